package queue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/blockq/xmetrics"
)

func TestMetrics(t *testing.T) {
	var (
		assert = assert.New(t)
		m      = Metrics()
	)

	assert.Len(m, 2)

	types := make(map[string]string, len(m))
	for _, metric := range m {
		types[metric.Name] = metric.Type
	}

	assert.Equal(xmetrics.GaugeType, types[QueueDepth])
	assert.Equal(xmetrics.CounterType, types[WaitFailureCount])
}

func TestApplyMetricsData(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
	)

	registry, err := xmetrics.NewRegistry(&xmetrics.Options{
		Metrics: Metrics(),
	})

	require.NoError(err)

	m := ApplyMetricsData(registry)
	require.NotNil(m.Depth)
	require.NotNil(m.WaitFailures)

	q := Instrument(New[int](), WithDepth[int](m.Depth), WithFailures[int](m.WaitFailures))
	require.NoError(q.Push(1))

	_, ok := q.TryPop()
	require.True(ok)

	_, ok = q.TryPop()
	require.False(ok)

	families, err := registry.Gather()
	require.NoError(err)

	found := 0
	for _, f := range families {
		if strings.HasSuffix(f.GetName(), QueueDepth) || strings.HasSuffix(f.GetName(), WaitFailureCount) {
			found++
		}
	}

	assert.Equal(2, found)
}
