// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package trainsrs

import (
	"net/http"
	"time"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/serdser"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/model"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/usecase/trainsuc"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type trainURI struct {
	ID int `uri:"id" binding:"required,min=1"`
}

type rawTrainReq struct {
	Name     *string `form:"name"`
	Type     *string `form:"type"`
	Expiry   *string `form:"expiry" binding:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Polyline *string `form:"polyline"`
}

// Train is the JSON representation of a train. Unknown fields are
// reported as null values.
type Train struct {
	ID         int        `json:"id"`
	Name       *string    `json:"name"`
	Type       *string    `json:"type"`
	Polyline   *string    `json:"polyline"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Filled     bool       `json:"filled"`
}

func serTrain(t *model.Train) Train {
	st := Train{
		ID:         t.Key(),
		Name:       t.Name(),
		Type:       t.Type(),
		ExpiryDate: t.ExpiryDate(),
		Filled:     t.Filled(),
	}
	if p := t.Polyline(); p != nil {
		s := p.Encode()
		st.Polyline = &s
	}
	return st
}

func dserID(c *gin.Context) (int, bool) {
	uri := &trainURI{}
	if ok := serdser.BindURI(c, uri); !ok {
		return 0, false
	}
	return uri.ID, true
}

// parseExpiry parses the validated expiry form field. An empty value
// is the zero time which asks for removing the expiry date.
func parseExpiry(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func dserPatchTrainReq(c *gin.Context) (int, *trainsuc.TrainPatch) {
	id, ok := dserID(c)
	if !ok {
		return 0, nil
	}
	req := &rawTrainReq{}
	if ok := serdser.Bind(c, req, binding.Form); !ok {
		return 0, nil
	}
	if req.Polyline != nil {
		var errs map[string][]string
		serdser.AddErr(&errs, "polyline", "Polyline cannot be patched, use PUT.")
		c.JSON(http.StatusBadRequest, errs)
		return 0, nil
	}
	p := &trainsuc.TrainPatch{Name: req.Name, Type: req.Type}
	if req.Expiry != nil {
		e := parseExpiry(*req.Expiry)
		p.Expiry = &e
	}
	return id, p
}

func dserPutTrainReq(c *gin.Context) *model.Train {
	id, ok := dserID(c)
	if !ok {
		return nil
	}
	req := &rawTrainReq{}
	if ok := serdser.Bind(c, req, binding.Form); !ok {
		return nil
	}
	var errs map[string][]string
	t := model.NewTrain(id)
	t.SetName(emptyToNil(req.Name))
	t.SetType(emptyToNil(req.Type))
	if req.Expiry != nil && *req.Expiry != "" {
		e := parseExpiry(*req.Expiry)
		t.SetExpiryDate(&e)
	}
	if req.Polyline != nil {
		p, err := model.DecodePolyline(*req.Polyline)
		if serdser.Assert(&errs, err == nil, "polyline", "Polyline is not encoded properly.") {
			t.SetPolyline(p)
		}
	}
	if errs != nil {
		c.JSON(http.StatusBadRequest, errs)
		return nil
	}
	return t
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
