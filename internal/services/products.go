package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

type ProductService struct {
	products repo.ProductRepository
	events   events.Publisher
}

func NewProductService(store repo.Store, pub events.Publisher) *ProductService {
	return &ProductService{products: store.Products(), events: pub}
}

func ValidateProduct(p models.Product) error {
	var v ValidationErrors
	if strings.TrimSpace(p.Name) == "" {
		v.add("name", "Name is required")
	}
	if p.Price <= 0 {
		v.add("price", "Price must be greater than zero")
	}
	if p.Cost < 0 {
		v.add("cost", "Cost cannot be negative")
	}
	if p.Stock < 0 {
		v.add("stock", "Stock cannot be negative")
	}
	if p.Rating < 0 || p.Rating > 5 {
		v.add("rating", "Rating must be between 0 and 5")
	}
	return v.err()
}

func duplicateSKU(err error, sku string) error {
	if errors.Is(err, repo.ErrDuplicatedValueUnique) {
		return ValidationErrors{{Field: "sku", Description: "SKU " + sku + " is already in use"}}
	}
	return err
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.GetAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (models.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	if err := ValidateProduct(p); err != nil {
		return models.Product{}, err
	}
	p.ID = ""
	created, err := s.products.Create(ctx, p)
	if err != nil {
		return models.Product{}, duplicateSKU(err, p.SKU)
	}
	publish(ctx, s.events, events.New(events.ProductCreated, created.ID, created))
	return created, nil
}

// Update replaces the product with id.
func (s *ProductService) Update(ctx context.Context, id string, p models.Product) (models.Product, error) {
	p.ID = id
	p.Name = strings.TrimSpace(p.Name)
	p.SKU = strings.TrimSpace(p.SKU)
	if err := ValidateProduct(p); err != nil {
		return models.Product{}, err
	}
	p.UpdatedAt = time.Now().UTC()
	updated, err := s.products.Update(ctx, p)
	if err != nil {
		return models.Product{}, duplicateSKU(err, p.SKU)
	}
	publish(ctx, s.events, events.New(events.ProductUpdated, updated.ID, updated))
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.events, events.New(events.ProductDeleted, id, nil))
	return nil
}
