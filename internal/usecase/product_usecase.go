package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
	repo "github.com/danielasalgadov/zona-de-riego/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// ListProducts returns the whole catalog, optionally filtered by category.
func (u *ProductUsecase) ListProducts(ctx context.Context, category string) ([]model.Product, error) {
	if category == "" {
		items, err := u.productRepo.List(ctx)
		if err != nil {
			return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return items, nil
	}

	cat := model.ProductCategory(category)
	if !cat.IsValid() {
		return []model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	items, err := u.productRepo.ListByCategory(ctx, cat)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type CreateProductInput struct {
	Name        string
	Description string
	Price       int64
	Category    string
	Stock       int64
	ImageURL    string
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in CreateProductInput) (int64, error) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Stock < 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	cat := model.ProductCategory(in.Category)
	if !cat.IsValid() {
		return 0, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       in.Price,
		Category:    cat,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

// Partial update: nil fields keep their current value.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *int64
	Category    *string
	Stock       *int64
	ImageURL    *string
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in UpdateProductInput) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	upd := repo.ProductUpdate{
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return NewHTTPError(http.StatusBadRequest, "name required")
		}
		upd.Name = &name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		upd.Price = in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
		}
		upd.Stock = in.Stock
	}
	if in.Category != nil {
		cat := model.ProductCategory(*in.Category)
		if !cat.IsValid() {
			return NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		upd.Category = &cat
	}

	err := u.productRepo.Update(ctx, productID, upd)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// DeleteProduct removes the product unconditionally. Cart rows and order
// items referencing it are left alone; order items keep their snapshots.
func (u *ProductUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	err := u.productRepo.Delete(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
