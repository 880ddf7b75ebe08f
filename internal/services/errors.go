// Package services holds the business rules that sit between the HTTP
// handlers and the store: validation, derived fields and change events.
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/rogerio-castellano/ops-dashboard/internal/events"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrProductNotFound  = errors.New("product not found")
)

type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationErrors lists every rule a request broke.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = e.Description
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v *ValidationErrors) add(field, format string, args ...any) {
	*v = append(*v, FieldError{Field: field, Description: fmt.Sprintf(format, args...)})
}

func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// publish sends e and only logs a failure; the change is already stored.
func publish(ctx context.Context, pub events.Publisher, e events.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, e); err != nil {
		log.Printf("⚠️ failed to publish %s for %s: %v", e.Type, e.EntityID, err)
	}
}
