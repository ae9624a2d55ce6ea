// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/entity"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strAddr(s string) *string {
	return &s
}

var sampleLine = model.Polyline{
	{Lat: 47.5, Lon: 19.04},
	{Lat: 47.68, Lon: 17.63},
}

func sampleRecord() entity.Map {
	return entity.Map{
		"id":          int64(521),
		"name":        "Savaria",
		"type":        "IC",
		"polyline":    sampleLine.Encode(),
		"expiry_date": time.Date(2018, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewTrain(t *testing.T) {
	tr := model.NewTrain(521)
	assert.Equal(t, 521, tr.Key())
	assert.False(t, tr.Filled())
	assert.Nil(t, tr.Name())
	assert.Nil(t, tr.Polyline())
}

func TestTrainFillFromRecord(t *testing.T) {
	tr := model.NewTrain(521)
	notified := 0
	tr.OnChange(func() { notified++ })
	require.NoError(t, tr.FillFromRecord(sampleRecord()))
	assert.True(t, tr.Filled())
	assert.Equal(t, strAddr("Savaria"), tr.Name())
	assert.Equal(t, strAddr("IC"), tr.Type())
	assert.Equal(t, sampleLine, tr.Polyline())
	require.NotNil(t, tr.ExpiryDate())
	assert.Equal(t, 2018, tr.ExpiryDate().Year())
	assert.Equal(t, 1, notified)
}

func TestTrainFillFromSparseRecord(t *testing.T) {
	tr := model.NewTrain(1)
	tr.SetName(strAddr("old"))
	require.NoError(t, tr.FillFromRecord(entity.Map{"name": nil}))
	assert.True(t, tr.Filled())
	assert.Nil(t, tr.Name())
	assert.Nil(t, tr.Type())
	assert.Nil(t, tr.Polyline(), "unknown geometry")
	assert.Nil(t, tr.ExpiryDate(), "never expires")
	assert.False(t, tr.Expired(time.Now()))
}

func TestTrainFillFromBadPolyline(t *testing.T) {
	tr := model.NewTrain(1)
	err := tr.FillFromRecord(entity.Map{"polyline": "_p~iF~ps|U_"})
	assert.Error(t, err)
	assert.False(t, tr.Filled())
}

func TestTrainFillFrom(t *testing.T) {
	src := model.NewTrain(1)
	require.NoError(t, src.FillFromRecord(sampleRecord()))
	dst := model.NewTrain(2)
	notified := 0
	dst.OnChange(func() { notified++ })
	dst.FillFrom(src)
	assert.Equal(t, 2, dst.Key())
	assert.True(t, dst.Filled())
	assert.Equal(t, src.Name(), dst.Name())
	assert.Equal(t, src.Type(), dst.Type())
	assert.Equal(t, src.Polyline(), dst.Polyline())
	assert.Equal(t, src.ExpiryDate(), dst.ExpiryDate())
	assert.Equal(t, 1, notified)
}

func TestTrainFillFromDoesNotShareStorage(t *testing.T) {
	src := model.NewTrain(1)
	src.SetPolyline(model.Polyline{{Lat: 47.5, Lon: 19.05}, {Lat: 47.6, Lon: 19.1}})
	dst := model.NewTrain(1)
	dst.FillFrom(src)
	src.Polyline()[0].Lat = 0
	assert.Equal(t, 47.5, dst.Polyline()[0].Lat)
}

func TestTrainFillFromOtherTypedNil(t *testing.T) {
	tr := model.NewTrain(1)
	assert.False(t, tr.FillFromOther((*model.Train)(nil)))
	assert.False(t, tr.Filled())
}

func TestTrainFillFromOtherStation(t *testing.T) {
	tr := model.NewTrain(7)
	require.NoError(t, tr.FillFromRecord(sampleRecord()))
	notified := 0
	tr.OnChange(func() { notified++ })

	st := model.NewStation(7)
	require.NoError(t, st.FillFromRecord(entity.Map{
		"name": "Gyor", "lat": 47.68, "lon": 17.63,
	}))
	assert.False(t, tr.FillFromOther(st))
	assert.Equal(t, strAddr("Savaria"), tr.Name())
	assert.Equal(t, sampleLine, tr.Polyline())
	assert.Zero(t, notified)

	other := model.NewTrain(8)
	other.SetType(strAddr("S"))
	assert.True(t, tr.FillFromOther(other))
	assert.Equal(t, strAddr("S"), tr.Type())
	assert.Nil(t, tr.Name())
	assert.Equal(t, 7, tr.Key())
	assert.True(t, tr.Filled(), "filled never reverts")
}

func TestTrainSettersNotifyOnEveryWrite(t *testing.T) {
	tr := model.NewTrain(1)
	notified := 0
	tr.OnChange(func() { notified++ })
	name := strAddr("same")
	tr.SetName(name)
	tr.SetName(name)
	tr.SetType(nil)
	tr.SetPolyline(nil)
	tr.SetExpiryDate(nil)
	assert.Equal(t, 5, notified)
}

func TestTrainSchemaValues(t *testing.T) {
	tr := model.NewTrain(1)
	tr.SetName(strAddr("Bz"))
	tr.SetPolyline(model.Polyline{})
	s := model.TrainSchema()
	assert.Equal(t, []string{"name", "type", "polyline", "expiry_date"}, s.Columns())
	assert.Equal(t, []any{"Bz", nil, "", nil}, s.Values(tr))
}

func TestTrainExpired(t *testing.T) {
	now := time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := model.NewTrain(1)
	past, future := now.Add(-time.Hour), now.Add(time.Hour)
	tr.SetExpiryDate(&past)
	assert.True(t, tr.Expired(now))
	tr.SetExpiryDate(&future)
	assert.False(t, tr.Expired(now))
}
