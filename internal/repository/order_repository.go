package repository

import (
	"context"

	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// Newest first, for the admin "recent orders" view.
	ListAll(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	SetPaymentPreference(ctx context.Context, orderID int64, preferenceID string) error
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
