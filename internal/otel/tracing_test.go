package otel

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gauzy/internal/config"
)

func TestSampler(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{"always_on", 1, "AlwaysOnSampler"},
		{"always_off", 1, "AlwaysOffSampler"},
		{"traceidratio", 0.5, "TraceIDRatioBased{0.5}"},
		{"parentbased_always_off", 1, "ParentBased{root:AlwaysOffSampler"},
		{"parentbased_traceidratio", 0.25, "ParentBased{root:TraceIDRatioBased{0.25}"},
		{"", 1, "ParentBased{root:AlwaysOnSampler"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, Sampler(tt.name, tt.ratio).Description(), tt.want)
		})
	}
}

func TestInit_Disabled(t *testing.T) {
	log, hook := test.NewNullLogger()

	shutdown, err := Init(context.Background(), config.TracingConfig{Disabled: true}, log)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "tracing_configured", entry.Message)
	assert.Equal(t, false, entry.Data["tracing_enabled"])
}

func TestInit_UnsupportedProtocolDegrades(t *testing.T) {
	log, hook := test.NewNullLogger()

	shutdown, err := Init(context.Background(), config.TracingConfig{ServiceName: "gauzy", Protocol: "carrier-pigeon"}, log)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "tracing_init_failed", entry.Message)
}
