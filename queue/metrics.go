package queue

import (
	"github.com/go-kit/kit/metrics"
	"github.com/xmidt-org/blockq/xmetrics"
)

const (
	QueueDepth       = "queue_depth_value"
	WaitFailureCount = "queue_wait_failure_count"
)

type QueueMetrics struct {
	Depth        metrics.Gauge
	WaitFailures metrics.Counter
}

func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name: QueueDepth,
			Help: "Number of items currently queued",
			Type: xmetrics.GaugeType,
		},
		{
			Name: WaitFailureCount,
			Help: "Count of retrieval attempts that returned no item and of rejected pushes",
			Type: xmetrics.CounterType,
		},
	}
}

func ApplyMetricsData(registry xmetrics.Registry) (m QueueMetrics) {
	for _, metric := range Metrics() {
		switch metric.Name {
		case QueueDepth:
			m.Depth = registry.NewGauge(metric.Name)
			m.Depth.Add(0.0)
		case WaitFailureCount:
			m.WaitFailures = registry.NewCounter(metric.Name)
			m.WaitFailures.Add(0.0)
		}
	}

	return
}
