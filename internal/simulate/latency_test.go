package simulate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatencyWaitsOut(t *testing.T) {
	start := time.Now()
	require.NoError(t, Latency(context.Background(), 10*time.Millisecond))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestLatencyZeroReturnsImmediately(t *testing.T) {
	require.NoError(t, Latency(context.Background(), 0))
}

func TestLatencyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Latency(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatencyZeroReportsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, Latency(ctx, 0), context.Canceled)
}
