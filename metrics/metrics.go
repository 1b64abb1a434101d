package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "food_delivery"

var (
	SeedRowsInserted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "seed_rows_inserted_total",
		Help:      "Rows inserted by the seed loader, by table.",
	}, []string{"table"})

	MigrationsRun = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "migrations_run_total",
		Help:      "Schema migrations applied by this process.",
	})

	NotificationsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "Order notifications handed to a publisher, by outcome.",
	}, []string{"type", "outcome"})

	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_lookups_total",
		Help:      "Catalog cache lookups, by result.",
	}, []string{"result"})

	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Inspection server requests, by route and status code.",
	}, []string{"route", "code"})

	TableRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "table_rows",
		Help:      "Row count per table at the last stats refresh.",
	}, []string{"table"})
)

// Registry holds every collector above. A private registry keeps repeated test setups
// from tripping duplicate registration on the global one.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		SeedRowsInserted,
		MigrationsRun,
		NotificationsPublished,
		CacheLookups,
		HTTPRequests,
		TableRows,
	)
}

// ObserveCounts publishes table row counts to the TableRows gauge.
func ObserveCounts(counts map[string]int64) {
	for table, n := range counts {
		TableRows.WithLabelValues(table).Set(float64(n))
	}
}
