package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe("directory", "list", time.Now(), nil)
	m.Observe("directory", "list", time.Now(), nil)
	m.Observe("directory", "list", time.Now(), errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("directory", "list", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("directory", "list", OutcomeError)))

	n, err := testutil.GatherAndCount(reg, "usersconsole_remote_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestObserve_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.Observe("auth", "login", time.Now(), nil)
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}

func TestSummarize(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Observe("directory", "list", time.Now(), nil)
	m.Observe("directory", "list", time.Now(), errors.New("boom"))
	m.Observe("auth", "login", time.Now(), nil)

	got, err := Summarize(reg)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "auth", got[0].Service)
	assert.Equal(t, "login", got[0].Op)
	assert.Equal(t, 1, got[0].OK)
	assert.Equal(t, 0, got[0].Errors)

	assert.Equal(t, "directory", got[1].Service)
	assert.Equal(t, "list", got[1].Op)
	assert.Equal(t, 1, got[1].OK)
	assert.Equal(t, 1, got[1].Errors)
	assert.GreaterOrEqual(t, got[1].AvgSeconds, 0.0)
}

func TestSummarize_Empty(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	got, err := Summarize(reg)
	require.NoError(t, err)
	assert.Empty(t, got)
}
