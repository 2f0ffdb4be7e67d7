package controllers

import (
	"errors"
	"net/http"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthController struct {
	base
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{base: base{logger: logger}, auth: auth}
}

func authFailure(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, dto.AuthResponse{IsSuccess: false, Message: message})
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	res, err := c.auth.Register(ctx.Request.Context(), req)
	var policyErr *services.PasswordPolicyError
	switch {
	case err == nil:
		sendJSONResponse(ctx, http.StatusOK, res)
	case errors.Is(err, services.ErrEmailTaken):
		authFailure(ctx, http.StatusBadRequest, msgEmailTaken)
	case errors.As(err, &policyErr):
		authFailure(ctx, http.StatusBadRequest, policyErr.Error())
	default:
		c.respondWithError(ctx, err, "")
	}
}

// Login handles user login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	res, err := c.auth.Login(ctx.Request.Context(), req)
	switch {
	case err == nil:
		sendJSONResponse(ctx, http.StatusOK, res)
	case errors.Is(err, services.ErrUnauthorized):
		authFailure(ctx, http.StatusUnauthorized, msgInvalidCredentials)
	default:
		c.respondWithError(ctx, err, "")
	}
}
