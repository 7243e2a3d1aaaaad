package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestVoucherCounters(t *testing.T) {
	before := testutil.ToFloat64(vouchersIssued)
	VoucherIssued()
	if got := testutil.ToFloat64(vouchersIssued); got != before+1 {
		t.Fatalf("issued = %v, want %v", got, before+1)
	}

	c := voucherChecks.WithLabelValues("redeem", OutcomeUsed)
	before = testutil.ToFloat64(c)
	VoucherCheck("redeem", OutcomeUsed)
	if got := testutil.ToFloat64(c); got != before+1 {
		t.Fatalf("checks = %v, want %v", got, before+1)
	}
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	done := HTTPStarted()
	done(http.MethodGet, "/health", http.StatusOK)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `lodge_http_requests_total{method="GET",route="/health",status="200"}`) {
		t.Fatalf("request counter missing:\n%s", body)
	}
}
