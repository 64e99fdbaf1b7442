package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "gatehouse/internal/domain/errors"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveRegistration(OutcomeSuccess)
	m.ObserveRegistration(OutcomeUsernameTaken)
	m.ObserveRegistration(OutcomeUsernameTaken)
	m.ObserveLogin(OutcomeInvalidCredentials)
	m.ObserveGateDecision(OutcomeTokenRequired)

	assert.InDelta(t, 1, testutil.ToFloat64(m.registrations.WithLabelValues(OutcomeSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.registrations.WithLabelValues(OutcomeUsernameTaken)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.logins.WithLabelValues(OutcomeInvalidCredentials)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.gateDecisions.WithLabelValues(OutcomeTokenRequired)), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveLogin(OutcomeSuccess)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `gatehouse_logins_total{outcome="success"} 1`), body)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	first, second := New(), New()

	first.ObserveGateDecision(OutcomeSuccess)

	assert.InDelta(t, 0, testutil.ToFloat64(second.gateDecisions.WithLabelValues(OutcomeSuccess)), 0)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: OutcomeSuccess},
		{name: "validation", err: domainerrors.ErrValidationFailed, want: OutcomeValidationFailed},
		{name: "username too long", err: domainerrors.ErrUsernameTooLong, want: OutcomeValidationFailed},
		{name: "password too long", err: domainerrors.ErrPasswordTooLong.WrapMessage("bcrypt"), want: OutcomeValidationFailed},
		{name: "taken", err: domainerrors.ErrUsernameTaken.WrapMessage("race"), want: OutcomeUsernameTaken},
		{name: "credentials", err: domainerrors.ErrInvalidCredentials, want: OutcomeInvalidCredentials},
		{name: "token required", err: domainerrors.ErrTokenRequired, want: OutcomeTokenRequired},
		{name: "token invalid", err: domainerrors.ErrTokenInvalid, want: OutcomeTokenInvalid},
		{name: "store", err: domainerrors.NewStoreError(errors.New("down"), "find"), want: OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}
