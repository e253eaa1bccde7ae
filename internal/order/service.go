package order

import (
	"context"
	"fmt"
	"time"

	"chocoshop-be/internal/catalog"
	"chocoshop-be/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Checkout(ctx context.Context, items []CartItem) (*Confirmation, error)
}

type service struct {
	catalog catalog.Service
	repo    Repository
}

func NewService(catalogSvc catalog.Service, repo Repository) Service {
	return &service{
		catalog: catalogSvc,
		repo:    repo,
	}
}

// Checkout re-derives authoritative prices from the catalog, computes the
// order total, and persists the order with its items atomically.
//
// Duplicate product ids in the cart are kept as separate order lines, one
// per submitted cart line.
func (s *service) Checkout(ctx context.Context, items []CartItem) (*Confirmation, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Int("item_count", len(items)),
	)

	if len(items) == 0 {
		log.Warn("checkout rejected: empty cart")
		return nil, ErrEmptyCart
	}

	// One bulk lookup for the distinct ids referenced by the cart.
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		log.Error("catalog lookup failed", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	orderItems := make([]OrderItem, 0, len(items))

	for i, item := range items {
		logItem := log.With(
			zap.Int("index", i),
			zap.String("product_id", item.ProductID),
			zap.Int("quantity", item.Quantity),
		)

		p, ok := products[item.ProductID]
		if !ok {
			logItem.Warn("unknown product in cart")
			return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ProductID)
		}

		if item.Quantity <= 0 {
			logItem.Warn("invalid quantity")
			return nil, fmt.Errorf("%w: %s", ErrInvalidQuantity, item.ProductID)
		}

		lineAmount := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(lineAmount)

		logItem.Debug("item priced",
			zap.String("product_name", p.Name),
			zap.String("unit_price", p.Price.String()),
			zap.String("line_amount", lineAmount.String()),
		)

		orderItems = append(orderItems, OrderItem{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    item.Quantity,
			UnitPrice:   p.Price,
		})
	}

	o := &Order{
		ID:     uuid.New(),
		Date:   time.Now(),
		Total:  total,
		Status: StatusProcessing,
		Items:  orderItems,
	}

	log = log.With(
		zap.String("order_id", o.ID.String()),
		zap.String("total", total.String()),
	)

	if err := s.repo.CreateOrderTx(ctx, o); err != nil {
		log.Error("failed to persist order", zap.Error(err))
		return nil, err
	}

	log.Info("order placed")

	return &Confirmation{
		OrderID: o.ID,
		Status:  o.Status,
		Total:   total.Round(2),
		Message: "Order placed successfully!",
	}, nil
}
