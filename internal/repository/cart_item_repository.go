package repository

import (
	"context"

	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
)

type CartItemRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// Merges into an existing (user, product) row by adding addQty, or
	// inserts a new row.
	Upsert(ctx context.Context, userID int64, productID int64, addQty int64) error
	UpdateQuantity(ctx context.Context, cartItemID int64, qty int64) error
	DeleteByID(ctx context.Context, cartItemID int64) error
	FindByID(ctx context.Context, cartItemID int64) (model.CartItem, error)
	IsOwnedByUser(ctx context.Context, cartItemID int64, userID int64) (bool, error)
	// Drains the whole cart. Used by checkout after the payment preference
	// has been created.
	ClearByUserID(ctx context.Context, userID int64) error
}
