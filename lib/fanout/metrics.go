package fanout

import "github.com/prometheus/client_golang/prometheus"

var (
	fanoutQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "serverquery",
			Subsystem: "fanout",
			Name:      "queries_total",
			Help:      "Per-server queries issued by the fan-out driver, by outcome.",
		},
		[]string{"result"},
	)

	fanoutInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "serverquery",
			Subsystem: "fanout",
			Name:      "queries_in_flight",
			Help:      "Number of server queries currently in flight.",
		},
	)
)

func init() {
	prometheus.MustRegister(fanoutQueriesTotal, fanoutInFlight)
}
