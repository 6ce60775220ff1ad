package assets

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	operationAdd    = "add"
	operationRemove = "remove"

	outcomeSuccess = "success"
	outcomeSkipped = "skipped"
	outcomeFailure = "failure"
)

//nolint:gochecknoglobals //prometheus collectors
var operationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "bakerypro",
		Subsystem: "assets",
		Name:      "operations_total",
		Help:      "Image commits and removals by outcome.",
	},
	[]string{"operation", "outcome"},
)
