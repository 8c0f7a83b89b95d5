package metrics

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/logicloom/internal/qm"
)

func TestOutcomeOf(t *testing.T) {
	_, cfgErr := qm.New(nil, []string{"a"})
	require.Error(t, cfgErr)

	for _, tc := range []struct {
		err  error
		want string
	}{
		{nil, Succeeded},
		{cfgErr, Invalid},
		{errors.Wrap(qm.ErrCandidateLimit, "too many"), CandidateLimit},
		{errors.New("boom"), Failed},
	} {
		assert.Equal(t, tc.want, OutcomeOf(tc.err))
	}
}

func TestRecordRuns(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := New(reg)
	require.NoError(t, err)

	s, err := qm.New([]int{0, 2, 4, 5, 6}, []string{"x", "y", "z"})
	require.NoError(t, err)

	done := m.Started()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.inFlight))
	done(s, s.Run())
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))

	m.Observe(nil, errors.Wrap(qm.ErrConfig, "bad"))
	m.Canceled()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(Succeeded)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(Invalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues(Canceled)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.runs.WithLabelValues(Failed)))

	n, err := testutil.GatherAndCount(reg,
		"logicloom_runs_total",
		"logicloom_run_duration_seconds",
		"logicloom_prime_implicants",
		"logicloom_runs_in_flight",
	)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestNewRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)
	_, err = New(reg)
	assert.Error(t, err)
}
