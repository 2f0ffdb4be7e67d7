package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/services"
	"github.com/Kariqs/vastra-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	msgProductNotFound  = "Product not found"
	msgVariantGone      = "Variant not found"
	msgUploadsDisabled  = "Image uploads are not configured"
	msgNoFilesUploaded  = "No files uploaded"
	msgAllUploadsFailed = "Failed to upload images"
)

type ProductController struct {
	base
	products *services.ProductService
	images   utils.ImageStore
}

// NewProductController accepts a nil image store; uploads then answer 503.
func NewProductController(products *services.ProductService, images utils.ImageStore, logger zerolog.Logger) *ProductController {
	return &ProductController{base: base{logger: logger}, products: products, images: images}
}

func (c *ProductController) GetProducts(ctx *gin.Context) {
	var categoryID uint
	if raw := ctx.Query("categoryId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid categoryId")
			return
		}
		categoryID = uint(id)
	}

	products, err := c.products.List(ctx.Request.Context(), ctx.Query("search"), categoryID)
	if err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, products)
}

func (c *ProductController) GetProduct(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	product, err := c.products.Get(ctx.Request.Context(), id)
	if err != nil {
		c.respondWithError(ctx, err, msgProductNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, product)
}

func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	product, err := c.products.Create(ctx.Request.Context(), req)
	if err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	ctx.Header("Location", fmt.Sprintf("/api/product/%d", product.ID))
	sendJSONResponse(ctx, http.StatusCreated, product)
}

func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	var req dto.CreateProductRequest
	if !c.bindJSON(ctx, &req) {
		return
	}

	if err := c.products.Update(ctx.Request.Context(), id, req); err != nil {
		c.respondWithError(ctx, err, msgProductNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	if err := c.products.Delete(ctx.Request.Context(), id); err != nil {
		c.respondWithError(ctx, err, "")
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (c *ProductController) DeleteVariant(ctx *gin.Context) {
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}
	variantID, ok := paramID(ctx, "variantId")
	if !ok {
		return
	}

	if err := c.products.DeleteVariant(ctx.Request.Context(), id, variantID); err != nil {
		c.respondWithError(ctx, err, msgVariantGone)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// UploadImages stores the multipart "images" files and attaches them to the
// product. Files that fail to upload are reported back by name.
func (c *ProductController) UploadImages(ctx *gin.Context) {
	if c.images == nil {
		sendErrorResponse(ctx, http.StatusServiceUnavailable, msgUploadsDisabled)
		return
	}
	id, ok := paramID(ctx, "id")
	if !ok {
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid form data")
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgNoFilesUploaded)
		return
	}

	if _, err := c.products.Get(ctx.Request.Context(), id); err != nil {
		c.respondWithError(ctx, err, msgProductNotFound)
		return
	}

	var uploadedURLs, failedUploads []string
	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			c.logger.Warn().Err(err).Str("file", file.Filename).Msg("open upload")
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		key := fmt.Sprintf("products/%d/%s%s", id, uuid.NewString(), strings.ToLower(filepath.Ext(file.Filename)))
		url, err := c.images.Upload(ctx.Request.Context(), key, file.Header.Get("Content-Type"), f)
		f.Close()
		if err != nil {
			c.logger.Error().Err(err).Str("file", file.Filename).Msg("upload image")
			failedUploads = append(failedUploads, file.Filename)
			continue
		}
		uploadedURLs = append(uploadedURLs, url)
	}

	if len(uploadedURLs) == 0 {
		sendJSONResponse(ctx, http.StatusBadGateway, gin.H{"message": msgAllUploadsFailed, "failed": failedUploads})
		return
	}

	product, err := c.products.AddImages(ctx.Request.Context(), id, uploadedURLs)
	if err != nil {
		c.respondWithError(ctx, err, msgProductNotFound)
		return
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedURLs,
		"product": product,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}
