package observability

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	// LookupsTotal counts lookups executed during measurement, per structure
	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbench_lookups_total",
		Help: "The total number of measured lookups",
	}, []string{"kind"})

	// PassDurationSeconds records the elapsed time of each full lookup pass
	PassDurationSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lookupbench_pass_duration_seconds",
		Help:    "The elapsed time of a full lookup pass over one structure",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12),
	}, []string{"kind"})

	// LastPassMilliseconds holds the most recent pass time per structure and size
	LastPassMilliseconds = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lookupbench_last_pass_milliseconds",
		Help: "The elapsed time of the latest lookup pass",
	}, []string{"kind", "size"})

	// SizesCompletedTotal counts data sizes that reached the report stage
	SizesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lookupbench_sizes_completed_total",
		Help: "The total number of data sizes measured and reported",
	})

	// RunFailuresTotal counts sizes aborted by an error
	RunFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lookupbench_run_failures_total",
		Help: "The total number of aborted data sizes",
	}, []string{"stage"})
)

// WriteText dumps every registered metric family from g in the text
// exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
