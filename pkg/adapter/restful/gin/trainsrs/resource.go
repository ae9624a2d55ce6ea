// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package trainsrs realizes the trains resource, allowing the trains
// REST APIs to be accepted and delegated to the trains use case.
package trainsrs

import (
	"net/http"

	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/adapter/restful/gin/serdser"
	"github.com/DanielSharp01/MAVAppBackend-OLD/pkg/core/usecase/trainsuc"
	"github.com/gin-gonic/gin"
)

type resource struct {
	trains *trainsuc.UseCase
}

// Register instantiates a resource adapting the trains use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/mavapp/v1/trains/:id
//     in order to fetch a train,
//  2. PUT request to /api/mavapp/v1/trains/:id
//     in order to create or replace a train,
//  3. PATCH request to /api/mavapp/v1/trains/:id
//     in order to update some fields of a train,
//  4. DELETE request to /api/mavapp/v1/trains/:id
//     in order to remove a train.
func Register(r *gin.RouterGroup, trains *trainsuc.UseCase) {
	rs := &resource{trains: trains}
	r.GET("trains/:id", rs.GetTrain)
	r.PUT("trains/:id", rs.PutTrain)
	r.PATCH("trains/:id", rs.PatchTrain)
	r.DELETE("trains/:id", rs.DeleteTrain)
}

func (rs *resource) GetTrain(c *gin.Context) {
	id, ok := dserID(c)
	if !ok {
		return
	}
	t, err := rs.trains.Get(c, id)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serTrain(t))
}

func (rs *resource) PutTrain(c *gin.Context) {
	t := dserPutTrainReq(c)
	if t == nil {
		return
	}
	t, err := rs.trains.Create(c, t)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serTrain(t))
}

func (rs *resource) PatchTrain(c *gin.Context) {
	id, p := dserPatchTrainReq(c)
	if p == nil {
		return
	}
	t, err := rs.trains.Update(c, id, *p)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, serTrain(t))
}

func (rs *resource) DeleteTrain(c *gin.Context) {
	id, ok := dserID(c)
	if !ok {
		return
	}
	if err := rs.trains.Delete(c, id); err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
