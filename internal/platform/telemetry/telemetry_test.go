package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/list-creation-service/internal/platform/telemetry"
)

func TestInitTracer(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  string
	}{
		{"stdout", telemetry.ExporterStdout, "", ""},
		{"otlp url", telemetry.ExporterOTLP, "http://localhost:4318", ""},
		{"otlp host port", telemetry.ExporterOTLP, "localhost:4318", ""},
		{"otlp without endpoint", telemetry.ExporterOTLP, "", "requires an endpoint"},
		{"unknown exporter", "zipkin", "", "unsupported exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tp, err := telemetry.InitTracer(t.Context(), "test-service", tt.exporter, tt.endpoint)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			// No collector runs in tests, so the OTLP flush may fail.
			t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

			assert.Same(t, tp, otel.GetTracerProvider())
			assert.ElementsMatch(t,
				[]string{"traceparent", "tracestate", "baggage"},
				otel.GetTextMapPropagator().Fields())
		})
	}
}

func TestInitMeter(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
		endpoint string
		wantErr  string
	}{
		{"stdout", telemetry.ExporterStdout, "", ""},
		{"otlp", telemetry.ExporterOTLP, "https://collector.example:4318", ""},
		{"otlp without endpoint", telemetry.ExporterOTLP, "", "requires an endpoint"},
		{"unknown exporter", "prometheus", "", "unsupported exporter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mp, err := telemetry.InitMeter(t.Context(), "test-service", tt.exporter, tt.endpoint)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

			assert.Same(t, mp, otel.GetMeterProvider())
		})
	}
}

func TestNewMetrics_Records(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(t.Context()) })

	m, err := telemetry.NewMetrics(mp, "test-service")
	require.NoError(t, err)

	ctx := t.Context()
	m.ServerRequestTotal.Add(ctx, 1)
	m.ServerRequestDuration.Record(ctx, 0.1)
	m.ClientRequestTotal.Add(ctx, 1)
	m.ClientRequestDuration.Record(ctx, 0.2)
	m.BoardFetchTotal.Add(ctx, 1)
	m.BoardFetchDuration.Record(ctx, 0.3)
	m.BoardSessionTotal.Add(ctx, 1)
	m.BoardItemMovesTotal.Add(ctx, 1)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, "test-service", rm.ScopeMetrics[0].Scope.Name)

	names := make([]string, 0, len(rm.ScopeMetrics[0].Metrics))
	for _, md := range rm.ScopeMetrics[0].Metrics {
		names = append(names, md.Name)
	}
	assert.ElementsMatch(t, []string{
		"http.server.request.duration",
		"http.server.request.total",
		"http.client.request.duration",
		"http.client.request.total",
		"board.fetch.total",
		"board.fetch.duration",
		"board.session.total",
		"board.item.moves.total",
	}, names)
}

func TestNewMetrics_NoopProvider(t *testing.T) {
	t.Parallel()

	m, err := telemetry.NewMetrics(noop.NewMeterProvider(), "test-service")
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		m.BoardItemMovesTotal.Add(t.Context(), 1)
	})
}
