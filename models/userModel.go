package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email        string    `gorm:"uniqueIndex;size:255;not null"`
	FirstName    string    `gorm:"size:100"`
	LastName     string    `gorm:"size:100"`
	PasswordHash string    `gorm:"not null"`
	Addresses    []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// Address types are free-form; Home is what a new address gets when none is given.
const DefaultAddressType = "Home"

type Address struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Street      string `gorm:"not null"`
	City        string `gorm:"not null"`
	State       string `gorm:"not null"`
	ZipCode     string `gorm:"not null"`
	Country     string `gorm:"not null"`
	AddressType string `gorm:"size:50;default:Home"`
}
