package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine matches a metric line by name, partial labels and value.
// The exporter adds otel scope labels, hence the regex.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func TestNoOpBusinessMetrics(t *testing.T) {
	noOp := NewNoOpBusinessMetrics()

	assert.NotPanics(t, func() {
		noOp.RecordOperation(context.Background(), "assets", "asset_create", "success")
		noOp.RecordDuration(context.Background(), "assets", "asset_create", time.Millisecond, "error")
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "duxmanager_test")
	require.NoError(t, err)

	ctx := context.Background()
	bm.RecordOperation(ctx, "assets", "asset_create", "success")
	bm.RecordOperation(ctx, "assets", "asset_create", "success")
	bm.RecordOperation(ctx, "assets", "asset_create", "error")
	bm.RecordOperation(ctx, "digital_users", "digital_user_get", "success")

	bm.RecordDuration(ctx, "assets", "asset_create", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "assets", "asset_create", 60*time.Millisecond, "success")
	bm.RecordDuration(ctx, "digital_users", "digital_user_get", 10*time.Millisecond, "success")

	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	output := w.Body.String()

	assertBizMetricLine(t, output, `duxmanager_test_operations_total`,
		`domain="assets".*operation="asset_create".*status="success"`, `2`)
	assertBizMetricLine(t, output, `duxmanager_test_operations_total`,
		`domain="assets".*operation="asset_create".*status="error"`, `1`)
	assertBizMetricLine(t, output, `duxmanager_test_operations_total`,
		`domain="digital_users".*operation="digital_user_get".*status="success"`, `1`)
	assertBizMetricLine(t, output, `duxmanager_test_operation_duration_seconds_count`,
		`domain="assets".*operation="asset_create".*status="success"`, `2`)
	assertBizMetricLine(t, output, `duxmanager_test_operation_duration_seconds_sum`,
		`domain="digital_users".*operation="digital_user_get".*status="success"`, ``)
}
