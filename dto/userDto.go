package dto

import "time"

type AddressRequest struct {
	Street      string `json:"street" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	ZipCode     string `json:"zipCode" binding:"required"`
	Country     string `json:"country" binding:"required"`
	AddressType string `json:"addressType"`
}

type AddressResponse struct {
	ID          uint   `json:"id"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	Country     string `json:"country"`
	AddressType string `json:"addressType"`
}

type ProfileResponse struct {
	ID        uint              `json:"id"`
	Email     string            `json:"email"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	CreatedAt time.Time         `json:"createdAt"`
	Addresses []AddressResponse `json:"addresses"`
}
