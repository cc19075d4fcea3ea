package metrics

import (
	"testing"

	"team-member-service/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRemoval(t *testing.T) {
	registry := prometheus.NewRegistry()
	m, err := New(registry)
	require.NoError(t, err)

	m.ObserveRemoval(domain.RemovalRemoved)
	m.ObserveRemoval(domain.RemovalRemoved)
	m.ObserveRemoval(domain.RemovalFailed)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.removals.WithLabelValues(domain.RemovalRemoved)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.removals.WithLabelValues(domain.RemovalFailed)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.removals.WithLabelValues(domain.RemovalCancelled)))
}

func TestMetrics_DoubleRegistrationFails(t *testing.T) {
	registry := prometheus.NewRegistry()
	_, err := New(registry)
	require.NoError(t, err)

	_, err = New(registry)

	assert.Error(t, err)
}
