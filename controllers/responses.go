package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/Kariqs/vastra-api/middlewares"
	"github.com/Kariqs/vastra-api/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Standard response messages
const (
	msgInternalServerError = "Internal server error"
	msgNotFound            = "Not found"
	msgInvalidBody         = "Invalid request body"
	msgValidationFailed    = "Validation failed"
	msgCartEmpty           = "Cart is empty"
	msgOrderFailed         = "Failed to create order"
	msgUnauthenticated     = "Authentication required"
	msgInvalidCredentials  = "Invalid email or password"
	msgEmailTaken          = "User already exists with this email"
)

func sendJSONResponse(ctx *gin.Context, status int, data any) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

type base struct {
	logger zerolog.Logger
}

// respondWithError maps service errors onto HTTP responses. Causes of 5xx
// responses are logged and never sent to the client. An empty notFoundMessage
// answers ErrNotFound with a generic message.
func (b base) respondWithError(ctx *gin.Context, err error, notFoundMessage string) {
	_ = ctx.Error(err)
	if notFoundMessage == "" {
		notFoundMessage = msgNotFound
	}

	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		sendJSONResponse(ctx, http.StatusBadRequest, gin.H{
			"message": msgValidationFailed,
			"errors":  verr.Fields,
		})
	case errors.Is(err, services.ErrNotFound):
		sendErrorResponse(ctx, http.StatusNotFound, notFoundMessage)
	case errors.Is(err, services.ErrEmptyCart):
		sendErrorResponse(ctx, http.StatusBadRequest, msgCartEmpty)
	case errors.Is(err, services.ErrOrderCreationFailed):
		b.logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("order creation failed")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgOrderFailed)
	default:
		b.logger.Error().Err(err).Str("path", ctx.FullPath()).Msg("request failed")
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
	}
}

// bindJSON decodes the body into req and writes a 400 on failure.
func (b base) bindJSON(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		b.respondWithError(ctx, bindingError(err), "")
		return false
	}
	return true
}

func principal(ctx *gin.Context) (middlewares.Principal, bool) {
	p, ok := middlewares.GetPrincipal(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgUnauthenticated)
	}
	return p, ok
}

// paramID reads a positive numeric path parameter, answering 400 otherwise.
func paramID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 64)
	if err != nil || id == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, fmt.Sprintf("Invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

var registerTagName sync.Once

// UseJSONFieldNames makes binding errors report json field names.
func UseJSONFieldNames() {
	registerTagName.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			v.RegisterTagNameFunc(jsonFieldName)
		}
	})
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return services.NewValidationError("body", msgInvalidBody)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &services.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required."
	case "email":
		return fe.Field() + " must be a valid email address."
	case "min":
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s.", fe.Field(), fe.Param())
	default:
		return fe.Field() + " is invalid."
	}
}
