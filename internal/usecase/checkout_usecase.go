package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danielasalgadov/zona-de-riego/internal/domain/model"
	"github.com/danielasalgadov/zona-de-riego/internal/metrics"
	"github.com/danielasalgadov/zona-de-riego/internal/notification"
	"github.com/danielasalgadov/zona-de-riego/internal/payment"
	repo "github.com/danielasalgadov/zona-de-riego/internal/repository"
)

// CheckoutUsecase turns the user's cart into an order and a payment
// preference. The steps are sequential with no compensating rollback: once
// the order header exists it exists permanently, even if the gateway call or
// a later step fails. Only the header+items insert is transactional.
type CheckoutUsecase struct {
	tx           repo.TransactionManager
	cartItemRepo repo.CartItemRepository
	productRepo  repo.ProductRepository
	orderRepo    repo.OrderRepository
	gateway      payment.PreferenceCreator
	notifier     notification.Notifier
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

func NewCheckoutUsecase(
	tx repo.TransactionManager,
	cartItemRepo repo.CartItemRepository,
	productRepo repo.ProductRepository,
	orderRepo repo.OrderRepository,
	gateway payment.PreferenceCreator,
	notifier notification.Notifier,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		tx:           tx,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		gateway:      gateway,
		notifier:     notifier,
		logger:       logger,
		metrics:      m,
	}
}

type CheckoutInput struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
}

type CheckoutOutput struct {
	OrderID      int64  `json:"order_id"`
	PaymentURL   string `json:"payment_url"`
	PreferenceID string `json:"preference_id"`
}

func (u *CheckoutUsecase) validate(in CheckoutInput) error {
	if strings.TrimSpace(in.CustomerName) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.CustomerEmail)); err != nil {
		return NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if strings.TrimSpace(in.CustomerPhone) == "" {
		return NewHTTPError(http.StatusBadRequest, "phone required")
	}
	if len(strings.TrimSpace(in.ShippingAddress)) < 10 {
		return NewHTTPError(http.StatusBadRequest, "shipping address must be at least 10 characters")
	}
	return nil
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, userID int64, in CheckoutInput) (CheckoutOutput, error) {
	if userID <= 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err := u.validate(in); err != nil {
		return CheckoutOutput{}, err
	}

	// 1. Load the cart.
	cartItems, err := u.cartItemRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if len(cartItems) == 0 {
		u.metrics.CheckoutFailures.WithLabelValues(metrics.StageEmptyCart).Inc()
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	// 2. Resolve every product and build the price snapshots. A missing
	// product aborts the whole checkout; there is no partial order.
	var totalAmount int64 = 0
	orderItems := make([]model.OrderItem, 0, len(cartItems))

	for _, ci := range cartItems {
		p, err := u.productRepo.FindByID(ctx, ci.ProductID)
		if err == repo.ErrNotFound {
			u.metrics.CheckoutFailures.WithLabelValues(metrics.StageProductGone).Inc()
			return CheckoutOutput{}, NewHTTPError(http.StatusNotFound,
				fmt.Sprintf("product %d not found", ci.ProductID))
		}
		if err != nil {
			return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		totalAmount += p.Price * ci.Quantity
		orderItems = append(orderItems, model.OrderItem{
			ProductID:       p.ID,
			ProductName:     p.Name,
			Quantity:        ci.Quantity,
			PriceAtPurchase: p.Price,
		})
	}

	// 3. Persist order header + items together. Stock is deliberately not
	// decremented anywhere in this flow.
	var orderID int64
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		id, err := r.Orders().Create(ctx, model.Order{
			UserID:          userID,
			CustomerName:    strings.TrimSpace(in.CustomerName),
			CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
			CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
			ShippingAddress: strings.TrimSpace(in.ShippingAddress),
			TotalAmount:     totalAmount,
			Status:          model.OrderStatusPending,
			PaymentStatus:   model.PaymentStatusPending,
		})
		if err != nil {
			return err
		}
		orderID = id
		return r.OrderItems().CreateBulk(ctx, id, orderItems)
	})
	if err != nil {
		u.metrics.CheckoutFailures.WithLabelValues(metrics.StageOrderCreate).Inc()
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 4. Create the payment preference. On failure the order stays pending
	// without a preference id and the cart is NOT cleared; that state is
	// reconciled manually.
	prefItems := make([]payment.PreferenceItem, 0, len(orderItems))
	for _, it := range orderItems {
		prefItems = append(prefItems, payment.PreferenceItem{
			Title:     it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: float64(it.PriceAtPurchase) / 100,
		})
	}

	pref, err := u.gateway.CreatePreference(ctx, payment.PreferenceRequest{
		OrderID: orderID,
		Items:   prefItems,
		Payer: payment.Payer{
			Name:  strings.TrimSpace(in.CustomerName),
			Email: strings.TrimSpace(in.CustomerEmail),
			Phone: strings.TrimSpace(in.CustomerPhone),
		},
	})
	if err != nil {
		u.metrics.CheckoutFailures.WithLabelValues(metrics.StageGateway).Inc()
		u.logger.Error().Err(err).Int64("order_id", orderID).
			Msg("payment preference creation failed, order left pending")
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "payment gateway error")
	}

	// 5. Attach the preference to the order.
	if err := u.orderRepo.SetPaymentPreference(ctx, orderID, pref.PreferenceID); err != nil {
		u.metrics.CheckoutFailures.WithLabelValues(metrics.StagePreferenceID).Inc()
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 6. Drain the cart.
	if err := u.cartItemRepo.ClearByUserID(ctx, userID); err != nil {
		u.metrics.CheckoutFailures.WithLabelValues(metrics.StageCartClear).Inc()
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// 7. Tell the owner. Checkout has already succeeded for the customer,
	// so a delivery failure is only logged.
	if err := u.notifier.Notify(ctx, notification.Message{
		Title:   fmt.Sprintf("New Order #%d from %s", orderID, strings.TrimSpace(in.CustomerName)),
		Content: renderOrderNotification(orderID, in, totalAmount, orderItems),
	}); err != nil {
		u.metrics.NotificationFailures.Inc()
		u.logger.Warn().Err(err).Int64("order_id", orderID).Msg("owner notification failed")
	}

	u.metrics.OrdersPlaced.Inc()
	u.logger.Info().Int64("order_id", orderID).Int64("user_id", userID).
		Int64("total_amount", totalAmount).Msg("order placed")

	return CheckoutOutput{
		OrderID:      orderID,
		PaymentURL:   pref.RedirectURL(),
		PreferenceID: pref.PreferenceID,
	}, nil
}

func renderOrderNotification(orderID int64, in CheckoutInput, totalAmount int64, items []model.OrderItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Customer: %s\n", strings.TrimSpace(in.CustomerName))
	fmt.Fprintf(&b, "Email: %s\n", strings.TrimSpace(in.CustomerEmail))
	fmt.Fprintf(&b, "Phone: %s\n", strings.TrimSpace(in.CustomerPhone))
	fmt.Fprintf(&b, "Address: %s\n", strings.TrimSpace(in.ShippingAddress))
	fmt.Fprintf(&b, "Total: $%.2f MXN\n\n", float64(totalAmount)/100)

	b.WriteString("Items:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- %s x%d @ $%.2f\n", it.ProductName, it.Quantity, float64(it.PriceAtPurchase)/100)
	}

	b.WriteString("\nPayment: Pending (MercadoPago)\n")
	return b.String()
}
