// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/config"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/db/trainsrp"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/routes"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/stationsrs"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/trainsrs"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const configTemplate = `
database:
  driver: sqlite
  path: %s
places:
  endpoint: %s
usecases:
  trains:
    cache-size: 8
`

const placesBody = `{
  "status": "OK",
  "results": [
    {"name": "Budapest-Nyugati", "geometry": {"location": {"lat": 47.5105, "lng": 19.0566}}},
    {"name": "Budapest-Keleti", "geometry": {"location": {"lat": "47.5003", "lng": "19.0838"}}}
  ]
}`

// polyline of three points, as encoded by the reference algorithm
const encodedPolyline = "_p~iF~ps|U_ulLnnqC_mqNvxq`@"

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx     context.Context
	Pool    config.Pool
	Gin     *gin.Engine
	NoPlace *gin.Engine // the places API key is missing for this one
	Places  *httptest.Server
	Lookups atomic.Int32
}

func TestIntegrationGinTestSuite(t *testing.T) {
	suite.Run(t, &IntegrationGinTestSuite{Ctx: context.Background()})
}

func (igts *IntegrationGinTestSuite) SetupSuite() {
	igts.Places = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			igts.Lookups.Add(1)
			w.Header().Set("Content-Type", "application/json")
			io.WriteString(w, placesBody)
		},
	))
	dbPath := filepath.Join(igts.T().TempDir(), "mavapp.db")
	data := []byte(fmt.Sprintf(configTemplate, dbPath, igts.Places.URL))

	igts.T().Setenv("PlacesAPIKey", "test-key")
	c, err := config.Parse(data)
	igts.Require().NoError(err, "failed to parse config")
	igts.Pool, err = c.ConnectionPool(igts.Ctx, repo.NormalRole)
	igts.Require().NoError(err, "failed to open database")
	err = igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, conn repo.Conn) error {
			return c.Database.InitSchema(ctx, conn)
		},
	)
	igts.Require().NoError(err, "failed to create schema contents")

	igts.Gin = c.Gin.NewEngine()
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	_, err = routes.Register(igts.Ctx, igts.Gin, igts.Pool, c)
	igts.Require().NoError(err, "failed to register Gin routes")

	igts.T().Setenv("PlacesAPIKey", "")
	c, err = config.Parse(data)
	igts.Require().NoError(err, "failed to parse config without key")
	igts.NoPlace = c.Gin.NewEngine()
	_, err = routes.Register(igts.Ctx, igts.NoPlace, igts.Pool, c)
	igts.Require().NoError(err, "a missing key must not fail Register")
}

func (igts *IntegrationGinTestSuite) TearDownSuite() {
	igts.Places.Close()
	igts.NoError(igts.Pool.Close(), "failed to close the connections pool")
}

func stringAddr(s string) *string {
	return &s
}

func urlEncoded(m map[string]string) io.Reader {
	u := url.Values{}
	for k, v := range m {
		u.Set(k, v)
	}
	return strings.NewReader(u.Encode())
}

func (igts *IntegrationGinTestSuite) sendReqRecvResp(
	e *gin.Engine, w *httptest.ResponseRecorder, req *http.Request, res any,
) {
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")
	e.ServeHTTP(w, req)
	if res == nil {
		return
	}
	b := w.Body.Bytes()
	igts.NoError(json.Unmarshal(b, res), "body is not json")
}

func (igts *IntegrationGinTestSuite) do(
	method, path string, body io.Reader, res any,
) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, "/api/mavapp/v1/"+path, body)
	igts.Require().NoError(err, "cannot create %s request", method)
	igts.sendReqRecvResp(igts.Gin, w, req, res)
	return w
}

func (igts *IntegrationGinTestSuite) assertOptContains(
	expectedPart *string, seen []string, msgAndArgs ...any,
) bool {
	if expectedPart == nil {
		return true
	}
	if !igts.Equal(1, len(seen), msgAndArgs...) {
		return false
	}
	return igts.Contains(seen[0], *expectedPart, msgAndArgs...)
}

func (igts *IntegrationGinTestSuite) TestBadRequest() {
	before := igts.Lookups.Load()
	for _, tc := range []struct {
		name         string
		method, path string
		body         io.Reader
		id, expiry   *string
		polyline     *string
		lat, lon     *string
	}{
		{
			name:   "zero id",
			method: http.MethodGet,
			path:   "trains/0",
			id:     stringAddr("failed on the 'required' tag"),
		},
		{
			name:   "invalid expiry",
			method: http.MethodPatch,
			path:   "trains/5",
			body: urlEncoded(map[string]string{
				"expiry": "tomorrow",
			}),
			expiry: stringAddr("failed on the 'datetime' tag"),
		},
		{
			name:   "patch polyline",
			method: http.MethodPatch,
			path:   "trains/5",
			body: urlEncoded(map[string]string{
				"polyline": encodedPolyline,
			}),
			polyline: stringAddr("cannot be patched"),
		},
		{
			name:   "corrupt polyline",
			method: http.MethodPut,
			path:   "trains/5",
			body: urlEncoded(map[string]string{
				"polyline": "_p~iF~ps|U_",
			}),
			polyline: stringAddr("not encoded properly"),
		},
		{
			name:   "nearby no-lat",
			method: http.MethodGet,
			path:   "stations/nearby?lon=19.05",
			lat:    stringAddr("failed on the 'required' tag"),
		},
		{
			name:   "nearby invalid lat",
			method: http.MethodGet,
			path:   "stations/nearby?lat=95&lon=19.05",
			lat:    stringAddr("failed on the 'latitude' tag"),
		},
		{
			name:   "nearby invalid lon",
			method: http.MethodGet,
			path:   "stations/nearby?lat=47.5&lon=east",
			lon:    stringAddr("failed on the 'longitude' tag"),
		},
	} {
		igts.Run(tc.name, func() {
			res := &struct {
				ID       []string
				Expiry   []string
				Polyline []string
				Lat, Lon []string
			}{}
			w := igts.do(tc.method, tc.path, tc.body, res)

			igts.Equal(400, w.Code)
			igts.assertOptContains(tc.id, res.ID, "wrong id")
			igts.assertOptContains(tc.expiry, res.Expiry, "wrong expiry")
			igts.assertOptContains(tc.polyline, res.Polyline, "wrong polyline")
			igts.assertOptContains(tc.lat, res.Lat, "wrong lat")
			igts.assertOptContains(tc.lon, res.Lon, "wrong lon")
		})
	}
	igts.Equal(before, igts.Lookups.Load(), "invalid requests must not look up places")
}

func (igts *IntegrationGinTestSuite) TestNotFound() {
	for _, tc := range []struct {
		name, method, path string
		body               io.Reader
	}{
		{name: "get train", method: http.MethodGet, path: "trains/404"},
		{
			name:   "patch train",
			method: http.MethodPatch,
			path:   "trains/404",
			body: urlEncoded(map[string]string{
				"name": "Lost",
			}),
		},
		{name: "get station", method: http.MethodGet, path: "stations/404"},
	} {
		igts.Run(tc.name, func() {
			res := &struct {
				Detail string
			}{}
			w := igts.do(tc.method, tc.path, tc.body, res)

			igts.Equal(404, w.Code)
			igts.NotEmpty(res.Detail, "missing detail")
		})
	}
}

func (igts *IntegrationGinTestSuite) TestTrainLifecycle() {
	res := &trainsrs.Train{}
	w := igts.do(http.MethodPut, "trains/10", urlEncoded(map[string]string{
		"name":     "IC 512",
		"type":     "InterCity",
		"expiry":   "2030-01-02T03:04:05Z",
		"polyline": encodedPolyline,
	}), res)
	igts.Require().Equal(200, w.Code, "PUT failed: %s", w.Body.String())
	igts.Equal(10, res.ID)
	igts.Equal(stringAddr("IC 512"), res.Name)
	igts.Equal(stringAddr(encodedPolyline), res.Polyline)

	res = &trainsrs.Train{}
	w = igts.do(http.MethodGet, "trains/10", nil, res)
	igts.Require().Equal(200, w.Code)
	igts.True(res.Filled, "train must be filled after a GET")
	igts.Equal(stringAddr("InterCity"), res.Type)
	igts.Require().NotNil(res.ExpiryDate)
	igts.Equal(2030, res.ExpiryDate.UTC().Year())

	res = &trainsrs.Train{}
	w = igts.do(http.MethodPatch, "trains/10", urlEncoded(map[string]string{
		"name":   "IC 513",
		"type":   "",
		"expiry": "",
	}), res)
	igts.Require().Equal(200, w.Code, "PATCH failed: %s", w.Body.String())
	igts.Equal(stringAddr("IC 513"), res.Name)
	igts.Nil(res.Type, "empty type clears it")
	igts.Nil(res.ExpiryDate, "empty expiry clears it")
	igts.Equal(stringAddr(encodedPolyline), res.Polyline, "polyline is kept")

	stored := model.NewTrain(10)
	err := igts.Pool.Conn(
		igts.Ctx, func(ctx context.Context, c repo.Conn) error {
			return trainsrp.Fill(ctx, c, stored)
		},
	)
	igts.Require().NoError(err, "patched train is not stored")
	igts.Equal(stringAddr("IC 513"), stored.Name())
	igts.Nil(stored.Type())
	igts.Nil(stored.ExpiryDate())

	w = igts.do(http.MethodDelete, "trains/10", nil, nil)
	igts.Equal(http.StatusNoContent, w.Code)
	w = igts.do(http.MethodGet, "trains/10", nil, nil)
	igts.Equal(404, w.Code, "deleted train must not be served from cache")
}

func (igts *IntegrationGinTestSuite) TestNearbyStations() {
	before := igts.Lookups.Load()
	var res []stationsrs.Station
	w := igts.do(http.MethodGet, "stations/nearby?lat=47.51&lon=19.06", nil, &res)
	igts.Require().Equal(200, w.Code, "nearby failed: %s", w.Body.String())
	igts.Equal(before+1, igts.Lookups.Load())
	igts.Require().Len(res, 2)
	igts.Equal(stringAddr("Budapest-Nyugati"), res[0].Name)
	igts.Equal(stringAddr("Budapest-Keleti"), res[1].Name)
	igts.Require().NotNil(res[1].Lat)
	igts.InDelta(47.5003, *res[1].Lat, 1e-9)

	var again []stationsrs.Station
	w = igts.do(http.MethodGet, "stations/nearby?lat=47.51&lon=19.06", nil, &again)
	igts.Require().Equal(200, w.Code)
	igts.Require().Len(again, 2)
	igts.Equal(res[0].ID, again[0].ID, "stations are upserted by name")

	st := &stationsrs.Station{}
	w = igts.do(http.MethodGet, fmt.Sprintf("stations/%d", res[0].ID), nil, st)
	igts.Require().Equal(200, w.Code)
	igts.Equal(res[0], *st)
}

func (igts *IntegrationGinTestSuite) TestNearbyWithoutKey() {
	before := igts.Lookups.Load()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(
		http.MethodGet, "/api/mavapp/v1/stations/nearby?lat=47.5&lon=19", nil,
	)
	igts.Require().NoError(err)
	res := &struct {
		Detail string
	}{}
	igts.sendReqRecvResp(igts.NoPlace, w, req, res)

	igts.Equal(http.StatusServiceUnavailable, w.Code)
	igts.NotEmpty(res.Detail)
	igts.Equal(before, igts.Lookups.Load())
}

func (igts *IntegrationGinTestSuite) TestRequestID() {
	id := uuid.NewString()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/api/mavapp/v1/trains/404", nil)
	igts.Require().NoError(err)
	req.Header.Set(gin.RequestIDHeader, id)
	igts.sendReqRecvResp(igts.Gin, w, req, nil)
	igts.Equal(id, w.Header().Get(gin.RequestIDHeader))

	w = httptest.NewRecorder()
	req, err = http.NewRequest(http.MethodGet, "/api/mavapp/v1/trains/404", nil)
	igts.Require().NoError(err)
	req.Header.Set(gin.RequestIDHeader, "not-a-uuid")
	igts.sendReqRecvResp(igts.Gin, w, req, nil)
	_, err = uuid.Parse(w.Header().Get(gin.RequestIDHeader))
	igts.NoError(err, "a fresh request id is expected")
}
