package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollector_Counters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin(ResultSuccess)
	c.RecordLogin(ResultWrongPassword)
	c.RecordLogin(ResultWrongPassword)
	c.RecordRegistration(ResultConflict)
	c.RecordTokenVerify(ResultUnauthorized)

	if got := testutil.ToFloat64(c.logins.WithLabelValues(ResultWrongPassword)); got != 2 {
		t.Fatalf("wrong_password logins: got %v want 2", got)
	}
	if got := testutil.ToFloat64(c.logins.WithLabelValues(ResultSuccess)); got != 1 {
		t.Fatalf("success logins: got %v want 1", got)
	}
	if got := testutil.ToFloat64(c.registrations.WithLabelValues(ResultConflict)); got != 1 {
		t.Fatalf("conflict registrations: got %v want 1", got)
	}
	if got := testutil.ToFloat64(c.tokenVerifies.WithLabelValues(ResultUnauthorized)); got != 1 {
		t.Fatalf("unauthorized verifies: got %v want 1", got)
	}
}

func TestNewCollector_RegistersMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordLogin(ResultSuccess)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "authgate_login_total" {
			found = true
		}
	}
	if !found {
		t.Fatalf("authgate_login_total not registered")
	}
}
