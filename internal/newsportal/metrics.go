package newsportal

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess    = "success"
	resultError      = "error"
	labelUnsupported = "unsupported"
	metricsNamespace = "news_cms"
)

type Metrics struct {
	Published      prometheus.Counter
	PublishRuns    *prometheus.CounterVec
	EmbedResolves  *prometheus.CounterVec
	ArticleChanges *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "news_published_total",
			Help:      "Scheduled news published by the publish function.",
		}),
		PublishRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "publish_runs_total",
			Help:      "Runs of the scheduled publish function by result.",
		}, []string{"result"}),
		EmbedResolves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "embed_resolves_total",
			Help:      "Resolved embed URLs by node type.",
		}, []string{"type"}),
		ArticleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "article_changes_total",
			Help:      "Editor operations on news by kind.",
		}, []string{"op"}),
	}

	reg.MustRegister(m.Published, m.PublishRuns, m.EmbedResolves, m.ArticleChanges)

	return m
}
