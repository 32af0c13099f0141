package refgenome

import "github.com/prometheus/client_golang/prometheus"

var (
	metricRefills = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "refgenome",
		Name:      "refills_total",
		Help:      "Window refills issued to a backend.",
	}, []string{"backend"})

	metricCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "refgenome",
		Name:      "contig_cache_hits_total",
		Help:      "Contig lookups served by the last-contig cache.",
	})

	metricCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "refgenome",
		Name:      "contig_cache_misses_total",
		Help:      "Contig lookups that built a new contig.",
	})
)

// RegisterMetrics registers the package's counters on reg. Call at most
// once per registry.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(metricRefills, metricCacheHits, metricCacheMisses)
}
