package services

import (
	"context"
	"fmt"
	"log"

	"github.com/rogerio-castellano/ops-dashboard/internal/events"
	"github.com/rogerio-castellano/ops-dashboard/internal/models"
	"github.com/rogerio-castellano/ops-dashboard/internal/repo"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "THINK Cognitive Enhancement", Description: "Daily nootropic blend for memory and focus", Price: 49.99, Cost: 25, Stock: 150, Category: "Nootropics", SKU: "THINK-001", MonthlySales: 89, Rating: 4.8},
		{Name: "Brain Water Hydration", Description: "Electrolyte hydration with cognitive support", Price: 29.99, Cost: 15, Stock: 300, Category: "Hydration", SKU: "BW-001", MonthlySales: 156, Rating: 4.9},
		{Name: "Peaceful Slumber", Description: "Sleep and recovery formula", Price: 39.99, Cost: 20, Stock: 75, Category: "Sleep", SKU: "PS-001", MonthlySales: 67, Rating: 4.7},
		{Name: "Stress Shield", Description: "Adaptogen blend for stress management", Price: 44.99, Cost: 22, Stock: 120, Category: "Stress Relief", SKU: "SS-001", MonthlySales: 54, Rating: 4.6},
	}
}

func sampleCustomers() []models.Customer {
	return []models.Customer{
		{Name: "Sarah Johnson", Email: "sarah@email.com", Phone: "+1-555-0123", Type: "General Consumer", CognitiveGoal: "Memory Enhancement", ProgressScore: 85},
		{Name: "Mike Chen", Email: "mike@email.com", Phone: "+1-555-0124", Type: "Professional Athlete", CognitiveGoal: "Focus & Performance", ProgressScore: 92},
		{Name: "Emily Davis", Email: "emily@email.com", Phone: "+1-555-0125", Type: "Student", CognitiveGoal: "Stress Management", ProgressScore: 78},
	}
}

// SeedSampleData fills an empty store with a small catalogue, a few
// customers and two completed orders. It does nothing when the store already
// has products or customers.
func SeedSampleData(ctx context.Context, store repo.Store) (bool, error) {
	products, err := store.Reports().CountProducts(ctx)
	if err != nil {
		return false, err
	}
	customers, err := store.Reports().CountCustomers(ctx)
	if err != nil {
		return false, err
	}
	if products > 0 || customers > 0 {
		return false, nil
	}

	productSvc := NewProductService(store, events.Nop{})
	customerSvc := NewCustomerService(store, events.Nop{})
	orderSvc := NewOrderService(store, events.Nop{})

	var createdProducts []models.Product
	for _, p := range sampleProducts() {
		created, err := productSvc.Create(ctx, p)
		if err != nil {
			return false, fmt.Errorf("seed product %s: %w", p.Name, err)
		}
		createdProducts = append(createdProducts, created)
	}
	var createdCustomers []models.Customer
	for _, c := range sampleCustomers() {
		created, err := customerSvc.Create(ctx, c)
		if err != nil {
			return false, fmt.Errorf("seed customer %s: %w", c.Name, err)
		}
		createdCustomers = append(createdCustomers, created)
	}

	orders := []models.Order{
		{
			CustomerID:    createdCustomers[0].ID,
			Items:         []models.LineItem{{ProductID: createdProducts[0].ID, Quantity: 2}},
			Status:        models.OrderCompleted,
			PaymentMethod: "credit_card",
		},
		{
			CustomerID:    createdCustomers[1].ID,
			Items:         []models.LineItem{{ProductID: createdProducts[1].ID, Quantity: 1}},
			Status:        models.OrderCompleted,
			PaymentMethod: "paypal",
		},
	}
	for _, o := range orders {
		if _, err := orderSvc.Create(ctx, o); err != nil {
			return false, fmt.Errorf("seed order: %w", err)
		}
	}
	log.Printf("🌱 Seeded %d products, %d customers and %d orders", len(createdProducts), len(createdCustomers), len(orders))
	return true, nil
}
