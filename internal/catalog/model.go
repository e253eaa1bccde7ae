package catalog

import "github.com/shopspring/decimal"

// Product is the authoritative, server-held record of a purchasable item.
// Price is the only trusted source of pricing during checkout.
type Product struct {
	ID         string
	Name       string
	Price      decimal.Decimal
	Flavor     string
	ImageURL   string
	CategoryID string
}

type Category struct {
	ID   string
	Name string
}
