package controllers

import (
	"net/http"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	msgCartNotFound    = "Cart not found"
	msgVariantNotFound = "Product variant not found"
)

type CartController struct {
	base
	carts *services.CartService
}

func NewCartController(carts *services.CartService, logger zerolog.Logger) *CartController {
	return &CartController{base: base{logger: logger}, carts: carts}
}

func (c *CartController) GetCart(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	cart, err := c.carts.View(ctx.Request.Context(), p.UserID)
	if err != nil {
		c.respondWithError(ctx, err, msgCartNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) AddItem(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.AddToCartRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	cart, err := c.carts.AddItem(ctx.Request.Context(), p.UserID, req)
	if err != nil {
		c.respondWithError(ctx, err, msgVariantNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) UpdateItem(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.UpdateCartItemRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	cart, err := c.carts.UpdateItemQuantity(ctx.Request.Context(), p.UserID, req)
	if err != nil {
		c.respondWithError(ctx, err, msgCartNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	itemID, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	cart, err := c.carts.RemoveItem(ctx.Request.Context(), p.UserID, itemID)
	if err != nil {
		c.respondWithError(ctx, err, msgCartNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, cart)
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	if err := c.carts.Clear(ctx.Request.Context(), p.UserID); err != nil {
		c.respondWithError(ctx, err, msgCartNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
