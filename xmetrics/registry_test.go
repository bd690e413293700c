package xmetrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testNewRegistryDefault(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		r, err = NewRegistry(nil)
	)

	require.NoError(err)
	assert.NotNil(r)
}

func testNewRegistryPreregistered(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		r, err = NewRegistry(&Options{
			Metrics: []Metric{
				{Name: "test_counter", Type: CounterType},
				{Name: "test_gauge", Type: GaugeType},
				{Name: "test_histogram", Type: HistogramType, Buckets: []float64{0.1, 1.0}},
			},
		})
	)

	require.NoError(err)
	require.NotNil(r)

	counter := r.NewCounter("test_counter")
	require.NotNil(counter)
	counter.Add(1.0)

	gauge := r.NewGauge("test_gauge")
	require.NotNil(gauge)
	gauge.Set(12.0)

	histogram := r.NewHistogram("test_histogram", 0)
	require.NotNil(histogram)
	histogram.Observe(0.5)

	families, err := r.Gather()
	require.NoError(err)
	assert.Len(families, 3)
}

func testNewRegistryEmptyName(t *testing.T) {
	var (
		assert = assert.New(t)

		r, err = NewRegistry(&Options{
			Metrics: []Metric{
				{Type: CounterType},
			},
		})
	)

	assert.Nil(r)
	assert.Error(err)
}

func testNewRegistryDuplicate(t *testing.T) {
	var (
		assert = assert.New(t)

		r, err = NewRegistry(&Options{
			Metrics: []Metric{
				{Name: "test", Type: CounterType},
				{Name: "test", Type: CounterType},
			},
		})
	)

	assert.Nil(r)
	assert.Error(err)
}

func testNewRegistryUnsupportedType(t *testing.T) {
	var (
		assert = assert.New(t)

		r, err = NewRegistry(&Options{
			Metrics: []Metric{
				{Name: "test", Type: "summary"},
			},
		})
	)

	assert.Nil(r)
	assert.Error(err)
}

func TestNewRegistry(t *testing.T) {
	t.Run("Default", testNewRegistryDefault)
	t.Run("Preregistered", testNewRegistryPreregistered)
	t.Run("EmptyName", testNewRegistryEmptyName)
	t.Run("Duplicate", testNewRegistryDuplicate)
	t.Run("UnsupportedType", testNewRegistryUnsupportedType)
}

func testRegistryAdHoc(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		r, err = NewRegistry(&Options{Pedantic: true})
	)

	require.NoError(err)

	counterVec := r.NewCounterVec("ad_hoc_counter")
	require.NotNil(counterVec)

	// the cached collector is returned on subsequent calls
	assert.Equal(counterVec, r.NewCounterVec("ad_hoc_counter"))

	gaugeVec := r.NewGaugeVec("ad_hoc_gauge")
	require.NotNil(gaugeVec)
	assert.Equal(gaugeVec, r.NewGaugeVec("ad_hoc_gauge"))

	histogramVec := r.NewHistogramVec("ad_hoc_histogram")
	require.NotNil(histogramVec)
	assert.Equal(histogramVec, r.NewHistogramVec("ad_hoc_histogram"))
}

func testRegistryTypeMismatch(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		r, err = NewRegistry(&Options{
			Metrics: []Metric{
				{Name: "test", Type: CounterType},
			},
		})
	)

	require.NoError(err)

	assert.Panics(func() {
		r.NewGaugeVec("test")
	})

	assert.Panics(func() {
		r.NewHistogramVec("test")
	})
}

func TestRegistry(t *testing.T) {
	t.Run("AdHoc", testRegistryAdHoc)
	t.Run("TypeMismatch", testRegistryTypeMismatch)
}
