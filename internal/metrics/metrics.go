package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Metrics instruments ledger operations on a private registry so tests can
// assert on counter values without global registration conflicts.
type Metrics struct {
	registry *prometheus.Registry

	operationsTotal *prometheus.CounterVec
	cartItems       prometheus.Gauge
	cartTotal       prometheus.Gauge
}

// New creates a Metrics instance with all collectors registered.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cart_operations_total",
				Help: "Total number of successful cart mutations by action",
			},
			[]string{"action"},
		),
		cartItems: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cart_items",
				Help: "Current number of units reserved in the cart",
			},
		),
		cartTotal: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cart_total_amount",
				Help: "Current grand total of the cart",
			},
		),
	}

	registry.MustRegister(m.operationsTotal, m.cartItems, m.cartTotal)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveOperation records one successful mutation.
func (m *Metrics) ObserveOperation(action string) {
	m.operationsTotal.WithLabelValues(action).Inc()
}

// OperationCounter exposes the counter for a given action, used by tests.
func (m *Metrics) OperationCounter(action string) prometheus.Counter {
	return m.operationsTotal.WithLabelValues(action)
}

// SetCartState updates the cart gauges after a mutation.
func (m *Metrics) SetCartState(itemCount int, total decimal.Decimal) {
	m.cartItems.Set(float64(itemCount))
	m.cartTotal.Set(total.InexactFloat64())
}

// CartItemsGauge exposes the items gauge, used by tests.
func (m *Metrics) CartItemsGauge() prometheus.Gauge {
	return m.cartItems
}

// CartTotalGauge exposes the total gauge, used by tests.
func (m *Metrics) CartTotalGauge() prometheus.Gauge {
	return m.cartTotal
}
