package services

import (
	"github.com/Kariqs/vastra-api/dto"
	"github.com/Kariqs/vastra-api/models"
	"github.com/Kariqs/vastra-api/store"
	"github.com/shopspring/decimal"
)

func toCategoryResponse(c *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		ImageURL:    c.ImageUrl,
	}
}

func toProductResponse(p *models.Product) dto.ProductResponse {
	res := dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		BasePrice:   p.BasePrice,
		CreatedDate: p.CreatedAt,
		IsActive:    p.IsActive,
		CategoryID:  p.CategoryID,
		Images:      make([]dto.ProductImageResponse, 0, len(p.Images)),
		Variants:    make([]dto.ProductVariantResponse, 0, len(p.Variants)),
	}
	if p.Category.ID != 0 {
		category := toCategoryResponse(&p.Category)
		res.Category = &category
	}
	for _, img := range p.Images {
		res.Images = append(res.Images, dto.ProductImageResponse{
			ID:          img.ID,
			ImageURL:    img.ImageUrl,
			IsMainImage: img.IsMainImage,
		})
	}
	for _, v := range p.Variants {
		res.Variants = append(res.Variants, dto.ProductVariantResponse{
			ID:              v.ID,
			SKU:             v.SKU,
			Size:            v.Size,
			Color:           v.Color,
			Material:        v.Material,
			StockQuantity:   v.StockQuantity,
			PriceAdjustment: v.PriceAdjustment,
			Price:           v.Price(p.BasePrice),
		})
	}
	return res
}

func toCartResponse(cart *models.Cart, lines []store.CartLine) dto.CartResponse {
	res := dto.CartResponse{
		ID:          cart.ID,
		UserID:      cart.UserID,
		Items:       make([]dto.CartItemResponse, 0, len(lines)),
		TotalAmount: decimal.Zero,
	}
	for _, line := range lines {
		price := line.UnitPrice()
		res.Items = append(res.Items, dto.CartItemResponse{
			ID:               line.CartItemID,
			ProductID:        line.ProductID,
			ProductName:      line.ProductName,
			VariantSKU:       line.VariantSKU,
			Size:             line.Size,
			Color:            line.Color,
			Price:            price,
			Quantity:         line.Quantity,
			ImageURL:         line.ImageURL,
			ProductVariantID: line.ProductVariantID,
		})
		res.TotalAmount = res.TotalAmount.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return res
}

func toOrderResponse(o *models.Order) dto.OrderResponse {
	res := dto.OrderResponse{
		ID:              o.ID,
		OrderDate:       o.OrderDate,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		ShippingAddress: o.ShippingAddress,
		BillingAddress:  o.BillingAddress,
		ContactPhone:    o.ContactPhone,
		Items:           make([]dto.OrderItemResponse, 0, len(o.OrderItems)),
	}
	if o.Payment != nil {
		res.PaymentStatus = o.Payment.PaymentStatus
		res.TransactionID = o.Payment.TransactionID
	}
	for _, item := range o.OrderItems {
		snap := item.Snapshot.Data()
		res.Items = append(res.Items, dto.OrderItemResponse{
			ID:               item.ID,
			ProductVariantID: item.ProductVariantID,
			ProductID:        snap.ProductID,
			ProductName:      snap.ProductName,
			VariantSKU:       snap.SKU,
			Size:             snap.Size,
			Color:            snap.Color,
			Quantity:         item.Quantity,
			UnitPrice:        item.UnitPrice,
			LineTotal:        item.LineTotal(),
		})
	}
	return res
}

func toAddressResponse(a *models.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:          a.ID,
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		ZipCode:     a.ZipCode,
		Country:     a.Country,
		AddressType: a.AddressType,
	}
}
