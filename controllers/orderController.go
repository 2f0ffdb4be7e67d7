package controllers

import (
	"net/http"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const msgOrderNotFound = "Order not found"

type OrderController struct {
	base
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService, logger zerolog.Logger) *OrderController {
	return &OrderController{base: base{logger: logger}, orders: orders}
}

func (c *OrderController) CreateOrder(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	var req dto.CreateOrderRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	order, err := c.orders.CreateOrder(ctx.Request.Context(), p.UserID, req)
	if err != nil {
		c.respondWithError(ctx, err, msgOrderNotFound)
		return
	}
	c.logger.Info().Uint("order_id", order.ID).Uint("user_id", p.UserID).Str("total", order.TotalAmount.StringFixed(2)).Msg("order placed")
	sendJSONResponse(ctx, http.StatusCreated, order)
}

func (c *OrderController) GetOrders(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}

	orders, err := c.orders.ListOrders(ctx.Request.Context(), p.UserID)
	if err != nil {
		c.respondWithError(ctx, err, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, orders)
}

func (c *OrderController) GetOrder(ctx *gin.Context) {
	p, ok := principal(ctx)
	if !ok {
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	order, err := c.orders.GetOrder(ctx.Request.Context(), id, p.UserID)
	if err != nil {
		c.respondWithError(ctx, err, msgOrderNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, order)
}
