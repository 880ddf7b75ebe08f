package models

import "time"

const CustomerActive = "active"

// Customer is a buyer. TotalSpent, Orders and LastOrder are derived from the
// customer's orders and are never taken from client input.
type Customer struct {
	ID            string     `json:"id" bson:"_id"`
	Name          string     `json:"name" bson:"name"`
	Email         string     `json:"email" bson:"email"`
	Phone         string     `json:"phone,omitempty" bson:"phone,omitempty"`
	Type          string     `json:"type,omitempty" bson:"type,omitempty"`
	CognitiveGoal string     `json:"cognitiveGoal,omitempty" bson:"cognitiveGoal,omitempty"`
	ProgressScore int        `json:"progressScore" bson:"progressScore"`
	TotalSpent    float64    `json:"totalSpent" bson:"totalSpent"`
	Orders        int        `json:"orders" bson:"orders"`
	LastOrder     *time.Time `json:"lastOrder,omitempty" bson:"lastOrder,omitempty"`
	Status        string     `json:"status" bson:"status"`
	Notes         string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt" bson:"updatedAt"`
}
