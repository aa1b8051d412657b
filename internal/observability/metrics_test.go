package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecordSignupUpdatesCounters(t *testing.T) {
	before := testutil.ToFloat64(signupsCounter.WithLabelValues("Chess Club"))

	RecordSignup("Chess Club", 3)

	after := testutil.ToFloat64(signupsCounter.WithLabelValues("Chess Club"))
	require.Equal(t, before+1, after)
	require.Equal(t, float64(3), testutil.ToFloat64(participantsGauge.WithLabelValues("Chess Club")))
}

func TestRecordWithdrawalUpdatesCounters(t *testing.T) {
	before := testutil.ToFloat64(withdrawalsCounter.WithLabelValues("Drama Club"))

	RecordWithdrawal("Drama Club", 1)

	after := testutil.ToFloat64(withdrawalsCounter.WithLabelValues("Drama Club"))
	require.Equal(t, before+1, after)
	require.Equal(t, float64(1), testutil.ToFloat64(participantsGauge.WithLabelValues("Drama Club")))
}

func TestRecordRejectionCountsByReason(t *testing.T) {
	before := testutil.ToFloat64(rejectionsCounter.WithLabelValues(ReasonDuplicate))

	RecordRejection(ReasonDuplicate)

	after := testutil.ToFloat64(rejectionsCounter.WithLabelValues(ReasonDuplicate))
	require.Equal(t, before+1, after)
}

func TestSetRosterSize(t *testing.T) {
	SetRosterSize("Debate Team", 7)
	require.Equal(t, float64(7), testutil.ToFloat64(participantsGauge.WithLabelValues("Debate Team")))
}

func TestRecordHTTPRequestIsGathered(t *testing.T) {
	RecordHTTPRequest("GET", 200, 5*time.Millisecond)
	RecordHTTPRequest("POST", 404, time.Millisecond)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var requests *dto.MetricFamily
	for _, family := range families {
		if family.GetName() == "signup_service_http_requests_total" {
			requests = family
			break
		}
	}
	require.NotNil(t, requests)

	found := false
	for _, metric := range requests.GetMetric() {
		labels := map[string]string{}
		for _, pair := range metric.GetLabel() {
			labels[pair.GetName()] = pair.GetValue()
		}
		if labels["method"] == "POST" && labels["status"] == "4xx" {
			found = true
			require.GreaterOrEqual(t, metric.GetCounter().GetValue(), float64(1))
		}
	}
	require.True(t, found)
}

func TestStatusLabel(t *testing.T) {
	require.Equal(t, "2xx", statusLabel(200))
	require.Equal(t, "3xx", statusLabel(307))
	require.Equal(t, "4xx", statusLabel(404))
	require.Equal(t, "5xx", statusLabel(500))
}
