package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"homecare-scheduler/internal/metrics"
)

func TestNewSet_RegistersOnce(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	s, err := metrics.NewSet(reg)
	require.NoError(t, err)

	s.AssignmentOutcomes.WithLabelValues("assign", "success").Inc()
	s.GeocoderRetries.Inc()
	require.Equal(t, 1.0, testutil.ToFloat64(s.AssignmentOutcomes.WithLabelValues("assign", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(s.GeocoderRetries))

	_, err = metrics.NewSet(reg)
	require.Error(t, err, "second registration on the same registry must fail")
}

func TestNewSet_NilRegistry(t *testing.T) {
	t.Parallel()

	s, err := metrics.NewSet(nil)
	require.NoError(t, err)
	require.NotNil(t, s.HTTPRequests)
}
