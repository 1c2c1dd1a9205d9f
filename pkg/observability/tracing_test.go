package observability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTracingDisabled(t *testing.T) {
	telemetry, err := SetupTracing(context.Background(), TracingConfig{ServiceName: "portfolio"})
	require.NoError(t, err)
	assert.Nil(t, telemetry)
	assert.NoError(t, telemetry.Shutdown(context.Background()))
}

func TestSetupTracingEnabled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	telemetry, err := SetupTracing(ctx, TracingConfig{
		Endpoint:       "http://127.0.0.1:4318/",
		Headers:        "x-team=web",
		ServiceName:    "portfolio",
		ServiceVersion: "test",
	})
	require.NoError(t, err)
	require.NotNil(t, telemetry)
	assert.NoError(t, telemetry.Shutdown(ctx))
}

func TestNewResource(t *testing.T) {
	res, err := newResource(context.Background(), TracingConfig{ServiceName: "portfolio", ServiceVersion: "1.2.3"})
	require.NoError(t, err)

	attrs := map[string]string{}
	for _, kv := range res.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "portfolio", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
	assert.Equal(t, "opentelemetry", attrs["telemetry.sdk.name"])
}

func TestParseHeaders(t *testing.T) {
	assert.Empty(t, ParseHeaders(""))
	assert.Equal(t, map[string]string{"a": "1", "b": "x=y"}, ParseHeaders(" a = 1 ,b=x=y,broken"))
}
