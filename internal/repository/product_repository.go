package repository

import (
	"context"
	"errors"

	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// Partial update for admin edits; nil fields are left untouched.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *int64
	Category    *model.ProductCategory
	Stock       *int64
	ImageURL    *string
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	ListByCategory(ctx context.Context, category model.ProductCategory) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, id int64, u ProductUpdate) error
	// Hard delete. Cart and order rows referencing the product are left
	// in place.
	Delete(ctx context.Context, id int64) error
}
