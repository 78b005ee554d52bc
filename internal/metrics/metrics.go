// Package metrics records per-run selection figures in a private Prometheus
// registry and exports them in the textfile collector format.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"ortwheel/internal/artifacts"
	"ortwheel/pkg/types"
)

// Recorder owns the registry for one run.
type Recorder struct {
	reg *prometheus.Registry

	candidates *prometheus.GaugeVec
	selected   *prometheus.GaugeVec
	missing    *prometheus.GaugeVec
	builds     *prometheus.CounterVec
	fallback   prometheus.Counter
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	labels := []string{"os", "variant"}
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		candidates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ortwheel",
			Subsystem: "artifacts",
			Name:      "candidates",
			Help:      "Native library candidates checked for the platform",
		}, labels),
		selected: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ortwheel",
			Subsystem: "artifacts",
			Name:      "selected",
			Help:      "Native libraries found on disk and added to the package",
		}, labels),
		missing: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ortwheel",
			Subsystem: "artifacts",
			Name:      "missing",
			Help:      "Native library candidates dropped because they were absent",
		}, labels),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ortwheel",
			Subsystem: "manifest",
			Name:      "builds_total",
			Help:      "Manifests assembled",
		}, labels),
		fallback: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ortwheel",
			Subsystem: "artifacts",
			Name:      "platform_fallback_total",
			Help:      "Selections that used the fallback platform table",
		}),
	}
	r.reg.MustRegister(r.candidates, r.selected, r.missing, r.builds, r.fallback)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// Observe records one selection.
func (r *Recorder) Observe(ctx types.BuildContext, sel artifacts.Selection) {
	os, variant := ctx.OS.String(), ctx.Variant()
	r.candidates.WithLabelValues(os, variant).Set(float64(len(sel.Candidates)))
	r.selected.WithLabelValues(os, variant).Set(float64(len(sel.Artifacts)))
	r.missing.WithLabelValues(os, variant).Set(float64(len(sel.Missing)))
	r.builds.WithLabelValues(os, variant).Inc()
	if !sel.Supported {
		r.fallback.Inc()
	}
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
