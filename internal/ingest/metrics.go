package ingest

import "github.com/prometheus/client_golang/prometheus"

const (
	sourceJSON = "json"
	sourceCSV  = "csv"
	sourceXLSX = "xlsx"

	outcomeOK    = "ok"
	outcomeError = "error"
)

var rowsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "attendance",
		Subsystem: "ingest",
		Name:      "rows_total",
		Help:      "Attendance rows processed, by submission source and outcome.",
	},
	[]string{"source", "outcome"},
)

func init() {
	prometheus.MustRegister(rowsTotal)
}
