package git

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

//nolint:gochecknoglobals //prometheus collectors
var operationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "bakerypro",
		Subsystem: "git",
		Name:      "operation_duration_seconds",
		Help:      "Duration of image repository operations.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"operation", "outcome"},
)

func outcome(err error) string {
	if err != nil {
		return outcomeFailure
	}
	return outcomeSuccess
}
