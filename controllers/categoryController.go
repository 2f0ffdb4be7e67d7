package controllers

import (
	"net/http"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const msgCategoryNotFound = "Category not found"

type CategoryController struct {
	base
	categories *services.CategoryService
}

func NewCategoryController(categories *services.CategoryService, logger zerolog.Logger) *CategoryController {
	return &CategoryController{base: base{logger: logger}, categories: categories}
}

func (c *CategoryController) GetCategories(ctx *gin.Context) {
	categories, err := c.categories.List(ctx.Request.Context())
	if err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, categories)
}

func (c *CategoryController) GetCategory(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	category, err := c.categories.Get(ctx.Request.Context(), id)
	if err != nil {
		c.respondWithError(ctx, err, msgCategoryNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, category)
}

func (c *CategoryController) CreateCategory(ctx *gin.Context) {
	var req dto.CategoryRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	category, err := c.categories.Create(ctx.Request.Context(), req)
	if err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, category)
}

func (c *CategoryController) UpdateCategory(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	category, err := c.categories.Update(ctx.Request.Context(), id, req)
	if err != nil {
		c.respondWithError(ctx, err, msgCategoryNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, category)
}

func (c *CategoryController) DeleteCategory(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.categories.Delete(ctx.Request.Context(), id); err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	ctx.Status(http.StatusNoContent)
}
