package otel_test

import (
	"context"
	"errors"
	"testing"

	"hoteladmin/infras/otel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestScope_Attributes(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "resolve")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"room_types": int64(3),
		"amount":     decimal.RequireFromString("20.50"),
		"ratio":      0.5,
	})
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(3), attrs["room_types"].AsInt64())
	assert.Equal(t, "20.5", attrs["amount"].AsString())
	assert.InEpsilon(t, 0.5, attrs["ratio"].AsFloat64(), 1e-9)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}
