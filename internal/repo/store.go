package repo

import (
	"context"
	"errors"
)

var (
	ErrNotFound              = errors.New("record not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)

// Store is an explicitly opened handle over one backing database. Callers own
// its lifecycle and must Close it.
type Store interface {
	Products() ProductRepository
	Customers() CustomerRepository
	Orders() OrderRepository
	Integrations() IntegrationRepository
	Users() UserRepository
	Reports() ReportRepository
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
