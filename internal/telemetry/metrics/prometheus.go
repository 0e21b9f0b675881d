package metrics

import (
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on the metrics endpoint. Next to the
// go runtime and process collectors it exposes a constant service info gauge.
func SetupPrometheus(service string, extraCollectors ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	serviceInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "gymsphere_service_info",
		Help:        "Constant 1, labeled with the running service name",
		ConstLabels: prometheus.Labels{"service": service},
	})
	serviceInfo.Set(1)

	promRegistry.MustRegister(
		serviceInfo,
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.GoRuntimeMetricsRule{
				Matcher: regexp.MustCompile(`^/sched/latencies:seconds`),
			}),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promRegistry.MustRegister(extraCollectors...)

	return promRegistry
}
