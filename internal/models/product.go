package models

import "time"

// Product represents a sellable item in the catalogue.
type Product struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Price        float64   `json:"price" bson:"price"`
	Cost         float64   `json:"cost" bson:"cost"`
	Stock        int       `json:"stock" bson:"stock"`
	Category     string    `json:"category,omitempty" bson:"category,omitempty"`
	SKU          string    `json:"sku,omitempty" bson:"sku,omitempty"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	ShopifyID    string    `json:"shopifyId,omitempty" bson:"shopifyId,omitempty"`
	MonthlySales int       `json:"monthlySales" bson:"monthlySales"`
	Rating       float64   `json:"rating" bson:"rating"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ProductSales is one row of the top products report.
type ProductSales struct {
	ProductID string  `json:"productId" bson:"_id"`
	TotalSold int     `json:"totalSold" bson:"totalSold"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
}
