package handlers

import (
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/services"
)

type ProductRequest struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Cost         float64 `json:"cost"`
	Stock        int     `json:"stock"`
	Category     string  `json:"category"`
	SKU          string  `json:"sku"`
	Image        string  `json:"image"`
	ShopifyID    string  `json:"shopifyId"`
	MonthlySales int     `json:"monthlySales"`
	Rating       float64 `json:"rating"`
}

func (p ProductRequest) model() models.Product {
	return models.Product{
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Cost:         p.Cost,
		Stock:        p.Stock,
		Category:     p.Category,
		SKU:          p.SKU,
		Image:        p.Image,
		ShopifyID:    p.ShopifyID,
		MonthlySales: p.MonthlySales,
		Rating:       p.Rating,
	}
}

// CustomerRequest has no order aggregates; the server derives those.
type CustomerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Type          string `json:"type"`
	CognitiveGoal string `json:"cognitiveGoal"`
	ProgressScore int    `json:"progressScore"`
	Status        string `json:"status"`
	Notes         string `json:"notes"`
}

func (c CustomerRequest) model() models.Customer {
	return models.Customer{
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		Type:          c.Type,
		CognitiveGoal: c.CognitiveGoal,
		ProgressScore: c.ProgressScore,
		Status:        c.Status,
		Notes:         c.Notes,
	}
}

// OrderRequest has no total; the server computes it from the line items.
type OrderRequest struct {
	CustomerID      string            `json:"customerId"`
	Products        []models.LineItem `json:"products"`
	Status          string            `json:"status"`
	PaymentMethod   string            `json:"paymentMethod"`
	ShippingAddress string            `json:"shippingAddress"`
}

func (o OrderRequest) model() models.Order {
	return models.Order{
		CustomerID:      o.CustomerID,
		Items:           o.Products,
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		ShippingAddress: o.ShippingAddress,
	}
}

type IntegrationRequest struct {
	Platform  string                     `json:"platform"`
	APIKey    string                     `json:"apiKey"`
	APISecret string                     `json:"apiSecret"`
	StoreURL  string                     `json:"storeUrl"`
	IsActive  *bool                      `json:"isActive"`
	Settings  models.IntegrationSettings `json:"settings"`
}

func (i IntegrationRequest) model() models.Integration {
	active := true
	if i.IsActive != nil {
		active = *i.IsActive
	}
	return models.Integration{
		Platform:  i.Platform,
		APIKey:    i.APIKey,
		APISecret: i.APISecret,
		StoreURL:  i.StoreURL,
		IsActive:  active,
		Settings:  i.Settings,
	}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AuthResult struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

type ReportRequest struct {
	Type   string `json:"type"`
	Format string `json:"format"`
}

type ErrorResponse struct {
	Error  string                `json:"error"`
	Errors []services.FieldError `json:"errors,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
