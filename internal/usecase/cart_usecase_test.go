package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
	repo "github.com/danielasalgadov/zona-de-riego/internal/repository"
	"github.com/danielasalgadov/zona-de-riego/internal/usecase"
)

func TestCartUsecase_AddToCart_ZeroQuantity(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartItemRepoMock), new(ProductRepoMock))

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 10, Quantity: 0})
	assertErrContains(t, err, "quantity must be >= 1")
}

func TestCartUsecase_AddToCart_ProductNotFound(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddToCart(context.Background(), 1, usecase.AddCartInput{ProductID: 99, Quantity: 1})
	assertErrContains(t, err, "product not found")

	cRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCartUsecase_AddToCart_MergesIntoExistingRow(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	pRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Aspersor", Price: 4500}, nil)
	cRepo.On("Upsert", mock.Anything, int64(1), int64(10), int64(2)).Return(nil)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 5, UserID: 1, ProductID: 10, Quantity: 3},
	}, nil)

	out, err := uc.AddToCart(ctx, 1, usecase.AddCartInput{ProductID: 10, Quantity: 2})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(3*4500), out.Total)

	cRepo.AssertExpectations(t)
}

// A cart row whose product was deleted stays visible but contributes nothing
// to the total.
func TestCartUsecase_GetCart_ToleratesDeletedProduct(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 10, Quantity: 2},
		{ID: 2, UserID: 1, ProductID: 11, Quantity: 1},
	}, nil)
	pRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Tijeras", Price: 8000}, nil)
	pRepo.On("FindByID", mock.Anything, int64(11)).Return(model.Product{}, repo.ErrNotFound)

	out, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.NotNil(t, out.Items[0].Product)
	assert.Nil(t, out.Items[1].Product)
	assert.Equal(t, int64(16000), out.Total)
}

// Cart totals follow the live catalog price, not a snapshot.
func TestCartUsecase_GetCart_UsesLivePrices(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{
		{ID: 1, UserID: 1, ProductID: 10, Quantity: 2},
	}, nil)
	pRepo.On("FindByID", mock.Anything, int64(10)).Return(model.Product{ID: 10, Name: "Bomba", Price: 99900}, nil)

	out, err := uc.GetCart(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(199800), out.Total)
}

func TestCartUsecase_UpdateCartItem_QuantityBelowOne(t *testing.T) {
	uc := usecase.NewCartUsecase(new(CartItemRepoMock), new(ProductRepoMock))

	_, err := uc.UpdateCartItem(context.Background(), 1, 5, usecase.UpdateCartItemInput{Quantity: 0})
	assertErrContains(t, err, "quantity must be >= 1")
}

func TestCartUsecase_UpdateCartItem_NotOwned(t *testing.T) {
	cRepo := new(CartItemRepoMock)
	uc := usecase.NewCartUsecase(cRepo, new(ProductRepoMock))

	cRepo.On("IsOwnedByUser", mock.Anything, int64(5), int64(1)).Return(false, nil)

	_, err := uc.UpdateCartItem(context.Background(), 1, 5, usecase.UpdateCartItemInput{Quantity: 2})
	assertErrContains(t, err, "not found")
}

func TestCartUsecase_RemoveFromCart_Success(t *testing.T) {
	ctx := context.Background()

	cRepo := new(CartItemRepoMock)
	pRepo := new(ProductRepoMock)
	uc := usecase.NewCartUsecase(cRepo, pRepo)

	cRepo.On("IsOwnedByUser", mock.Anything, int64(5), int64(1)).Return(true, nil)
	cRepo.On("DeleteByID", mock.Anything, int64(5)).Return(nil)
	cRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.CartItem{}, nil)

	out, err := uc.RemoveFromCart(ctx, 1, 5)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))
	assert.Equal(t, int64(0), out.Total)

	cRepo.AssertExpectations(t)
}
