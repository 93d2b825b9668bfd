package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

func TestInitRegistersProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp, err := Init(context.Background(), "hackathon-analyzer", "test", sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := otel.Tracer("tracing_test").Start(context.Background(), "probe")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, "probe", ended[0].Name())
	require.Contains(t, ended[0].Resource().Attributes(), semconv.ServiceName("hackathon-analyzer"))
}
