package controllers

import (
	"net/http"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	msgUserNotFound    = "User not found"
	msgAddressNotFound = "Address not found"
)

type UserController struct {
	base
	users *services.UserService
}

func NewUserController(users *services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{base: base{logger: logger}, users: users}
}

func (c *UserController) GetProfile(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	profile, err := c.users.Profile(ctx.Request.Context(), p.UserID)
	if err != nil {
		c.respondWithError(ctx, err, msgUserNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, profile)
}

func (c *UserController) GetAddresses(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	addresses, err := c.users.ListAddresses(ctx.Request.Context(), p.UserID)
	if err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, addresses)
}

func (c *UserController) GetAddress(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	address, err := c.users.GetAddress(ctx.Request.Context(), p.UserID, id)
	if err != nil {
		c.respondWithError(ctx, err, msgAddressNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, address)
}

func (c *UserController) AddAddress(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.AddressRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	address, err := c.users.AddAddress(ctx.Request.Context(), p.UserID, req)
	if err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, address)
}

func (c *UserController) RemoveAddress(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.users.RemoveAddress(ctx.Request.Context(), p.UserID, id); err != nil {
		c.respondWithError(ctx, err, msgAddressNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
