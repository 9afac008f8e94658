package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Movement metrics
	MovementsInserted prometheus.Counter
	MovementsUpdated  prometheus.Counter
	MovementsDeleted  prometheus.Counter
	MovementAmount    prometheus.Histogram

	// Cascade metrics
	CascadeRows     prometheus.Histogram
	CascadeDuration prometheus.Histogram

	// Recalculation metrics
	Recalculations prometheus.Counter

	// Ledger metrics
	LedgerBalance prometheus.Gauge
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		// Movement metrics
		MovementsInserted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_movements_inserted_total",
			Help: "Total number of movements inserted",
		}),
		MovementsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_movements_updated_total",
			Help: "Total number of movements updated",
		}),
		MovementsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_movements_deleted_total",
			Help: "Total number of movements deleted",
		}),
		MovementAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_movement_amount",
			Help:    "Absolute movement amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// Cascade metrics
		CascadeRows: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_cascade_rows",
			Help:    "Number of rows rewritten per balance cascade",
			Buckets: []float64{1, 5, 10, 50, 100, 500, 1000, 5000},
		}),
		CascadeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_cascade_duration_seconds",
			Help:    "Duration of balance cascades",
			Buckets: prometheus.DefBuckets,
		}),

		// Recalculation metrics
		Recalculations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ledger_recalculations_total",
			Help: "Total number of full ledger recalculations",
		}),

		// Ledger metrics
		LedgerBalance: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_current_balance",
			Help: "Balance of the last chronological movement",
		}),
	}
}
