package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const StatusProcessing Status = "Processing"

// CartItem is one line of a client-submitted cart. It is untrusted input:
// only the product id and quantity are read, pricing always comes from the
// catalog.
type CartItem struct {
	ProductID string
	Quantity  int
}

type Order struct {
	ID     uuid.UUID
	Date   time.Time
	Total  decimal.Decimal
	Status Status
	Items  []OrderItem
}

// OrderItem is a denormalized snapshot of a product at sale time. Name and
// unit price are copied from the catalog row so later catalog edits cannot
// rewrite history.
type OrderItem struct {
	ItemID      int64
	OrderID     uuid.UUID
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

type Confirmation struct {
	OrderID uuid.UUID
	Status  Status
	Total   decimal.Decimal
	Message string
}
