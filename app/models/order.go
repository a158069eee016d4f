package models

// Order statuses as emitted by the backend.
const (
	OrderPending        = "PENDING"
	OrderPreparing      = "PREPARING"
	OrderReadyForPickup = "READY_FOR_PICKUP"
	OrderPickedUp       = "PICKED_UP"
	OrderCancelled      = "CANCELLED"
)

// Order is the order record returned by the order endpoints.
type Order struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"userId"`
	Username   string      `json:"username"`
	TotalPrice float64     `json:"totalPrice"`
	Status     string      `json:"status"`
	OrderItems []OrderItem `json:"orderItems"`
}

// OrderItem is one line of a placed order, priced at order time.
type OrderItem struct {
	ID           int64   `json:"id"`
	FoodItemID   int64   `json:"foodItemId"`
	FoodItemName string  `json:"foodItemName"`
	FoodItemPrice float64 `json:"foodItemPrice"`
	Quantity     int     `json:"quantity"`
	Subtotal     float64 `json:"subtotal"`
}

// OrderRequest is the place-order payload.
type OrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested line: item id and quantity.
type OrderItemRequest struct {
	FoodItemID int64 `json:"foodItemId"`
	Quantity   int   `json:"quantity"`
}
