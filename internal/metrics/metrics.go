// Package metrics exposes Prometheus counters for technique sessions
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "technique_api"

// Export results
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder owns a private registry so tests and multiple servers in one
// process never collide on the global one.
type Recorder struct {
	registry *prometheus.Registry

	techniquesCreated prometheus.Counter
	techniquesDeleted prometheus.Counter
	techniquesReset   prometheus.Counter
	levelChanges      *prometheus.CounterVec
	forceChanges      *prometheus.CounterVec
	effectsAdded      *prometheus.CounterVec
	effectsRemoved    prometheus.Counter
	addRejected       *prometheus.CounterVec
	exports           *prometheus.CounterVec
}

// New creates a recorder with process and Go runtime collectors attached
func New() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		techniquesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "techniques_created_total",
			Help:      "Total number of technique drafts created.",
		}),
		techniquesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "techniques_deleted_total",
			Help:      "Total number of technique drafts discarded.",
		}),
		techniquesReset: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "techniques_reset_total",
			Help:      "Total number of technique drafts reset to empty.",
		}),
		levelChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "level_changes_total",
			Help:      "Power level changes, partitioned by the new level.",
		}, []string{"level"}),
		forceChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "force_changes_total",
			Help:      "Dominant force changes, partitioned by the new force.",
		}, []string{"force"}),
		effectsAdded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "effects_added_total",
			Help:      "Effect instances added, partitioned by category.",
		}, []string{"category"}),
		effectsRemoved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "effects_removed_total",
			Help:      "Effect instances removed.",
		}),
		addRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "effects_rejected_total",
			Help:      "Effect additions refused, partitioned by reason.",
		}, []string{"reason"}),
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Text exports, partitioned by result.",
		}, []string{"result"}),
	}
}

// TechniqueCreated counts a new draft
func (r *Recorder) TechniqueCreated() { r.techniquesCreated.Inc() }

// TechniqueDeleted counts a discarded draft
func (r *Recorder) TechniqueDeleted() { r.techniquesDeleted.Inc() }

// TechniqueReset counts a reset
func (r *Recorder) TechniqueReset() { r.techniquesReset.Inc() }

// LevelChanged counts a level change
func (r *Recorder) LevelChanged(level string) { r.levelChanges.WithLabelValues(level).Inc() }

// ForceChanged counts a force change. The cleared force is labelled "none".
func (r *Recorder) ForceChanged(force string) {
	if force == "" {
		force = "none"
	}
	r.forceChanges.WithLabelValues(force).Inc()
}

// EffectAdded counts an added instance
func (r *Recorder) EffectAdded(category string) { r.effectsAdded.WithLabelValues(category).Inc() }

// EffectRemoved counts a removed instance
func (r *Recorder) EffectRemoved() { r.effectsRemoved.Inc() }

// EffectRejected counts a refused addition
func (r *Recorder) EffectRejected(reason string) { r.addRejected.WithLabelValues(reason).Inc() }

// Exported counts an export attempt
func (r *Recorder) Exported(ok bool) {
	result := ResultSuccess
	if !ok {
		result = ResultFailure
	}
	r.exports.WithLabelValues(result).Inc()
}

// Registry returns the underlying registry
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
