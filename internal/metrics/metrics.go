// Package metrics defines the Prometheus collectors for the storefront.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Checkout failure stages, used as the label on CheckoutFailures.
const (
	StageEmptyCart    = "empty_cart"
	StageProductGone  = "product_gone"
	StageOrderCreate  = "order_create"
	StageGateway      = "gateway"
	StagePreferenceID = "preference_id"
	StageCartClear    = "cart_clear"
)

type Metrics struct {
	OrdersPlaced         prometheus.Counter
	CheckoutFailures     *prometheus.CounterVec
	ContactSubmissions   prometheus.Counter
	NotificationFailures prometheus.Counter
}

// New registers the collectors on reg and returns them.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "shop_orders_placed_total",
			Help: "Orders successfully placed through checkout.",
		}),
		CheckoutFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "shop_checkout_failures_total",
			Help: "Checkout attempts that failed, by stage.",
		}, []string{"stage"}),
		ContactSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Accepted contact form submissions.",
		}),
		NotificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "owner_notification_failures_total",
			Help: "Owner notifications that could not be delivered.",
		}),
	}

	reg.MustRegister(
		m.OrdersPlaced,
		m.CheckoutFailures,
		m.ContactSubmissions,
		m.NotificationFailures,
	)
	return m
}
