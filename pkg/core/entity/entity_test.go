// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Base[int]
	label  *string
	weight *float64
	seen   *time.Time
}

var widgetSchema = NewSchema[int, *widget](
	Bind("label", String, func(w *widget) **string { return &w.label }),
	Bind("weight", Float64, func(w *widget) **float64 { return &w.weight }),
	Bind("seen", Time, func(w *widget) **time.Time { return &w.seen }),
)

func newWidget(k int) *widget {
	return &widget{Base: NewBase(k)}
}

func (w *widget) SetLabel(label *string) {
	w.label = label
	w.Changed()
}

type gadget struct {
	Base[int]
	label *string
}

func newGadget(k int) *gadget {
	return &gadget{Base: NewBase(k)}
}

func ptr[T any](v T) *T {
	return &v
}

// counter installs a change hook on b and returns the number of
// notifications which are observed so far.
func counter(b interface{ OnChange(func()) }) *int {
	n := new(int)
	b.OnChange(func() { *n++ })
	return n
}

func TestNewBaseIsUnfilled(t *testing.T) {
	for _, k := range []int{0, 1, -7, 1 << 30} {
		w := newWidget(k)
		assert.Equal(t, k, w.Key())
		assert.False(t, w.Filled())
	}
}

func TestFillFromRecord(t *testing.T) {
	seen := time.Date(2018, 3, 1, 10, 30, 0, 0, time.UTC)
	for _, tc := range []struct {
		name   string
		rec    Map
		label  *string
		weight *float64
		seen   *time.Time
	}{
		{
			name:   "all columns",
			rec:    Map{"label": "IC 521", "weight": 12.5, "seen": seen},
			label:  ptr("IC 521"),
			weight: ptr(12.5),
			seen:   &seen,
		},
		{
			name: "missing columns",
			rec:  Map{},
		},
		{
			name: "null columns",
			rec:  Map{"label": nil, "weight": nil, "seen": nil},
		},
		{
			name:   "driver text representations",
			rec:    Map{"label": []byte("S70"), "weight": "3", "seen": "2018-03-01 10:30:00"},
			label:  ptr("S70"),
			weight: ptr(3.0),
			seen:   &seen,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := newWidget(5)
			w.label = ptr("stale")
			n := counter(w)
			require.NoError(t, widgetSchema.FillFromRecord(w, tc.rec))
			assert.True(t, w.Filled())
			assert.Equal(t, 5, w.Key())
			assert.Equal(t, tc.label, w.label)
			assert.Equal(t, tc.weight, w.weight)
			if tc.seen == nil {
				assert.Nil(t, w.seen)
			} else {
				require.NotNil(t, w.seen)
				assert.True(t, tc.seen.Equal(*w.seen))
			}
			assert.Equal(t, 1, *n, "one aggregate notification")
		})
	}
}

func TestFillFromRecordIsIdempotent(t *testing.T) {
	rec := Map{"label": "Bz 2", "weight": int64(4)}
	once, twice := newWidget(1), newWidget(1)
	require.NoError(t, widgetSchema.FillFromRecord(once, rec))
	require.NoError(t, widgetSchema.FillFromRecord(twice, rec))
	require.NoError(t, widgetSchema.FillFromRecord(twice, rec))
	assert.Equal(t, once.label, twice.label)
	assert.Equal(t, once.weight, twice.weight)
	assert.Equal(t, once.seen, twice.seen)
	assert.Equal(t, once.Filled(), twice.Filled())
}

func TestFillFromRecordFaultLeavesEntityUntouched(t *testing.T) {
	w := newWidget(2)
	w.label = ptr("kept")
	n := counter(w)
	err := widgetSchema.FillFromRecord(w, Map{"label": "new", "weight": true})
	var ke *KindError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, "weight", ke.Column)
	assert.Equal(t, ptr("kept"), w.label)
	assert.False(t, w.Filled())
	assert.Zero(t, *n)
}

func TestFillFromOtherSameVariant(t *testing.T) {
	src := newWidget(10)
	require.NoError(t, widgetSchema.FillFromRecord(src, Map{
		"label": "Gyor", "weight": 1.5,
	}))
	dst := newWidget(20)
	n := counter(dst)
	assert.True(t, widgetSchema.FillFromOther(dst, src))
	assert.Equal(t, 20, dst.Key(), "key is never copied")
	assert.Equal(t, src.label, dst.label)
	assert.Equal(t, src.weight, dst.weight)
	assert.Equal(t, src.seen, dst.seen)
	assert.Equal(t, src.Filled(), dst.Filled())
	assert.Equal(t, 1, *n)
}

func TestFillFromOtherCopiesUnfilledSnapshot(t *testing.T) {
	src := newWidget(1)
	src.label = ptr("draft")
	dst := newWidget(2)
	assert.True(t, widgetSchema.FillFromOther(dst, src))
	assert.False(t, dst.Filled())
	assert.Equal(t, ptr("draft"), dst.label)
}

func TestFillFromOtherNeverUnfills(t *testing.T) {
	dst := newWidget(1)
	require.NoError(t, widgetSchema.FillFromRecord(dst, Map{}))
	widgetSchema.Fill(dst, newWidget(2))
	assert.True(t, dst.Filled())
}

func TestFillFromOtherVariantMismatch(t *testing.T) {
	dst := newWidget(3)
	dst.label = ptr("unchanged")
	n := counter(dst)
	other := newGadget(3)
	other.label = ptr("foreign")
	other.filled = true
	assert.False(t, widgetSchema.FillFromOther(dst, other))
	assert.Equal(t, ptr("unchanged"), dst.label)
	assert.False(t, dst.Filled())
	assert.Zero(t, *n)
	assert.False(t, widgetSchema.FillFromOther(dst, nil))
}

func TestFillFromOtherTypedNil(t *testing.T) {
	dst := newWidget(4)
	dst.label = ptr("unchanged")
	n := counter(dst)
	var src *widget
	var other Keyed[int] = src
	assert.NotPanics(t, func() {
		assert.False(t, widgetSchema.FillFromOther(dst, other))
	})
	assert.Equal(t, ptr("unchanged"), dst.label)
	assert.Zero(t, *n)
}

func TestFillCopiesValues(t *testing.T) {
	src := newWidget(1)
	src.label = ptr("Szolnok")
	src.seen = ptr(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	dst := newWidget(2)
	widgetSchema.Fill(dst, src)
	require.NotNil(t, dst.label)
	assert.NotSame(t, src.label, dst.label)
	assert.NotSame(t, src.seen, dst.seen)
	*src.label = "Debrecen"
	assert.Equal(t, "Szolnok", *dst.label)
	assert.Nil(t, dst.weight, "nil values stay nil")
}

func TestSetterAlwaysNotifies(t *testing.T) {
	w := newWidget(1)
	n := counter(w)
	label := ptr("same")
	w.SetLabel(label)
	w.SetLabel(label)
	w.SetLabel(nil)
	assert.Equal(t, 3, *n)
}

func TestOnChangeReplacesHook(t *testing.T) {
	w := newWidget(1)
	first := counter(w)
	second := counter(w)
	w.SetLabel(nil)
	assert.Zero(t, *first)
	assert.Equal(t, 1, *second)
	w.OnChange(nil)
	w.SetLabel(nil)
	assert.Equal(t, 1, *second)
}

func TestColumnsAndValues(t *testing.T) {
	w := newWidget(1)
	w.label = ptr("x")
	assert.Equal(t, []string{"label", "weight", "seen"}, widgetSchema.Columns())
	assert.Equal(t, []any{"x", nil, nil}, widgetSchema.Values(w))
}

func TestRecordHelpers(t *testing.T) {
	rec := Map{"i": int32(7), "s": "9", "bad": struct{}{}, "ts": "nope"}
	i, err := Int64OrNull(rec, "i")
	require.NoError(t, err)
	assert.Equal(t, int64(7), *i)
	i, err = Int64OrNull(rec, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(9), *i)
	_, err = Int64OrNull(rec, "bad")
	assert.Error(t, err)
	_, err = StringOrNull(rec, "i")
	assert.Error(t, err)
	_, err = TimeOrNull(rec, "ts")
	assert.Error(t, err)
	s, err := StringOrNull(rec, "missing")
	assert.NoError(t, err)
	assert.Nil(t, s)
}
