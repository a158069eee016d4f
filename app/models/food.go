package models

import "time"

// FoodItem is the catalog entry returned by the food endpoints.
type FoodItem struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Price          float64    `json:"price"`
	AvailableToday bool       `json:"availableToday"`
	DonatedAt      *time.Time `json:"donatedAt,omitempty"`
	ReceivedByNgo  *time.Time `json:"receivedByNgoAt,omitempty"`
}

// FoodItemInput is the manager's create/update payload.
type FoodItemInput struct {
	Name           string  `json:"name"           validate:"required,min=2,max=100"`
	Description    string  `json:"description"    validate:"max=500"`
	Price          float64 `json:"price"          validate:"required,gt=0"`
	AvailableToday bool    `json:"availableToday"`
}
