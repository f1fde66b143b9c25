package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/danielasalgadov/zona-de-riego/internal/config"
	"github.com/danielasalgadov/zona-de-riego/internal/middleware"
	"github.com/danielasalgadov/zona-de-riego/internal/usecase"
)

type CheckoutHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

type CheckoutRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	ShippingAddress string `json:"shipping_address"`
}

type CheckoutResponse struct {
	Success      bool   `json:"success"`
	OrderID      int64  `json:"order_id"`
	PaymentURL   string `json:"payment_url"`
	PreferenceID string `json:"preference_id"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/shop")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/checkout", h.checkout)
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CheckoutResponse{
		Success:      true,
		OrderID:      out.OrderID,
		PaymentURL:   out.PaymentURL,
		PreferenceID: out.PreferenceID,
	})
}
