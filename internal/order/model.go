package order

import (
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every order status in display order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusShipped, StatusCompleted, StatusCancelled}

// Valid reports membership only; any status may move to any other.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Order struct {
	ID            int
	UserID        int
	StudentName   string
	StudentRoom   string
	StudentNumber string
	StudentID     string
	TotalPrice    int
	Status        Status
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID        int
	OrderID   int
	ProductID int
	Quantity  int
	Price     int // unit price captured at order time
	Size      *string
	Color     *string
	CreatedAt time.Time
}

type ItemInput struct {
	ProductID int `validate:"gt=0"`
	Quantity  int `validate:"min=1"`
	Price     int `validate:"gte=0"`
	Size      *string
	Color     *string
}

type CreateOrderInput struct {
	StudentName   string      `validate:"notblank"`
	StudentRoom   string      `validate:"notblank"`
	StudentNumber string      `validate:"notblank"`
	StudentID     string      `validate:"notblank"`
	Items         []ItemInput `validate:"min=1,dive"`
	TotalPrice    int         `validate:"gte=0"`
	Notes         *string
}

// ItemsTotal is the sum of price x quantity over the input items.
func (in CreateOrderInput) ItemsTotal() int {
	total := 0
	for _, it := range in.Items {
		total += it.Price * it.Quantity
	}
	return total
}

type CreateOrderResult struct {
	OrderID int
	Success bool
}

type Stats struct {
	TotalOrders int
	ByStatus    map[Status]int
	// Revenue sums total_price over orders that are not cancelled.
	Revenue int
}
