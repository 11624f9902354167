package master

import "github.com/prometheus/client_golang/prometheus"

// masterQueriesTotal counts GetServerList outcomes by result, in the
// teacher's cmd/strelaypoolsrv makeCounter style.
var masterQueriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "serverquery",
		Subsystem: "master",
		Name:      "queries_total",
		Help:      "Master-server discovery attempts by outcome.",
	},
	[]string{"result"},
)

func init() {
	prometheus.MustRegister(masterQueriesTotal)
}
