package models

// All lists every persisted model in dependency order for auto-migration.
func All() []any {
	return []any{
		&User{},
		&Address{},
		&Category{},
		&Product{},
		&ProductImage{},
		&ProductVariant{},
		&Cart{},
		&CartItem{},
		&Coupon{},
		&Order{},
		&OrderItem{},
		&Payment{},
	}
}
