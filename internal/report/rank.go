package report

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

const DefaultRankSize = 3

var ErrUnknownRankField = errors.New("unknown ranking field")

var customerFields = map[string]func(models.Customer) float64{
	"progressScore": func(c models.Customer) float64 { return float64(c.ProgressScore) },
	"totalSpent":    func(c models.Customer) float64 { return c.TotalSpent },
	"orders":        func(c models.Customer) float64 { return float64(c.Orders) },
}

var productFields = map[string]func(models.Product) float64{
	"monthlySales": func(p models.Product) float64 { return float64(p.MonthlySales) },
	"price":        func(p models.Product) float64 { return p.Price },
	"stock":        func(p models.Product) float64 { return float64(p.Stock) },
	"rating":       func(p models.Product) float64 { return p.Rating },
}

// rank sorts a copy of list by key descending, keeping input order among
// equal keys, and returns the first n.
func rank[T any](list []T, key func(T) float64, n int) []T {
	if n <= 0 {
		n = DefaultRankSize
	}
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
	if len(out) > n {
		out = out[:n]
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func RankCustomers(list []models.Customer, field string, n int) ([]models.Customer, error) {
	key, ok := customerFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRankField, field)
	}
	return rank(list, key, n), nil
}

func RankProducts(list []models.Product, field string, n int) ([]models.Product, error) {
	key, ok := productFields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRankField, field)
	}
	return rank(list, key, n), nil
}

// RankByProgress is the top three customers by progress score.
func RankByProgress(list []models.Customer) []models.Customer {
	return rank(list, customerFields["progressScore"], DefaultRankSize)
}

// RankBySales is the top three products by monthly sales.
func RankBySales(list []models.Product) []models.Product {
	return rank(list, productFields["monthlySales"], DefaultRankSize)
}
