package usecase

import (
	"context"
	"net/http"

	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
	repo "github.com/danielasalgadov/zona-de-riego/internal/repository"
)

type AdminOrderUsecase struct {
	orderRepo     repo.OrderRepository
	orderItemRepo repo.OrderItemRepository
}

// DI
func NewAdminOrderUsecase(
	orderRepo repo.OrderRepository,
	orderItemRepo repo.OrderItemRepository,
) *AdminOrderUsecase {
	return &AdminOrderUsecase{
		orderRepo:     orderRepo,
		orderItemRepo: orderItemRepo,
	}
}

type OrderDetailsOutput struct {
	Order model.Order       `json:"order"`
	Items []model.OrderItem `json:"items"`
}

// ListOrders returns every order, newest first.
func (u *AdminOrderUsecase) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.orderRepo.ListAll(ctx)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

func (u *AdminOrderUsecase) GetOrderDetails(ctx context.Context, orderID int64) (OrderDetailsOutput, error) {
	if orderID <= 0 {
		return OrderDetailsOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return OrderDetailsOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderDetailsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	items, err := u.orderItemRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return OrderDetailsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return OrderDetailsOutput{Order: o, Items: items}, nil
}

// UpdateOrderStatus sets the fulfillment status. Membership in the enum is
// the only guard; any status is reachable from any status, and setting the
// current value again succeeds.
func (u *AdminOrderUsecase) UpdateOrderStatus(ctx context.Context, orderID int64, status string) error {
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	st := model.OrderStatus(status)
	if !st.IsValid() {
		return NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	err := u.orderRepo.UpdateStatus(ctx, orderID, st)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
