package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registrations_total",
			Help: "Total successful user registrations",
		},
	)

	LoginsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "logins_total",
			Help: "Total login attempts",
		},
		[]string{"result"}, // ok|rejected
	)

	RecipesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_created_total",
			Help: "Total recipes created",
		},
	)

	RecipesDeletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "recipes_deleted_total",
			Help: "Total recipes deleted",
		},
	)
)

// Handler serves the /metrics endpoint.
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RegistrationsTotal)
	prometheus.MustRegister(LoginsTotal)
	prometheus.MustRegister(RecipesCreatedTotal)
	prometheus.MustRegister(RecipesDeletedTotal)
}
