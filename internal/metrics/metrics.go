// Package metrics exposes Prometheus instruments for record mutations and
// budget health.
package metrics

import (
	"strconv"
	"time"

	"budgetly/internal/aggregate"
	"budgetly/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity labels.
const (
	EntityExpense = "expense"
	EntityBudget  = "budget"
)

// Operation labels.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpNoop   = "noop"
)

// Metrics holds every instrument of the service.
type Metrics struct {
	// Registry owns the instruments; the /metrics endpoint serves it.
	Registry *prometheus.Registry

	requests      *prometheus.HistogramVec
	mutations     *prometheus.CounterVec
	records       *prometheus.GaugeVec
	budgetStatus  *prometheus.GaugeVec
	persistErrors prometheus.Counter
}

// New registers all instruments on a private registry, so it is safe to call
// more than once.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requests: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budgetly_http_request_duration_seconds",
				Help:    "HTTP request latency by method, route and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budgetly_mutations_total",
				Help: "Record mutations by entity and operation.",
			},
			[]string{"entity", "op"},
		),
		records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "budgetly_records",
				Help: "Records currently held by the store.",
			},
			[]string{"entity"},
		),
		budgetStatus: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "budgetly_budgets_by_status",
				Help: "Budgets per status for the current month.",
			},
			[]string{"status"},
		),
		persistErrors: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budgetly_persist_errors_total",
				Help: "Snapshots that could not be written to storage.",
			},
		),
	}
}

// ObserveRequest records the latency of a served request. route is the
// matched route pattern so that path parameters don't explode cardinality.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// IncrMutation counts one mutation.
func (m *Metrics) IncrMutation(entity, op string) {
	m.mutations.WithLabelValues(entity, op).Inc()
}

// IncrPersistError counts a failed snapshot write.
func (m *Metrics) IncrPersistError() {
	m.persistErrors.Inc()
}

// ObserveSnapshot refreshes the record gauges.
func (m *Metrics) ObserveSnapshot(snap models.Snapshot) {
	m.records.WithLabelValues(EntityExpense).Set(float64(len(snap.Expenses)))
	m.records.WithLabelValues(EntityBudget).Set(float64(len(snap.Budgets)))
}

// ObserveStatuses refreshes the budget status gauge.
func (m *Metrics) ObserveStatuses(statuses []aggregate.Status) {
	counts := map[models.BudgetStatus]int{
		models.BudgetStatusGood:    0,
		models.BudgetStatusWarning: 0,
		models.BudgetStatusOver:    0,
	}
	for _, s := range statuses {
		counts[s.Status]++
	}
	for status, n := range counts {
		m.budgetStatus.WithLabelValues(string(status)).Set(float64(n))
	}
}
