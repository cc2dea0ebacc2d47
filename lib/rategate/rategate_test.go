package rategate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFirstCallIsFree(t *testing.T) {
	g := New("test", time.Hour)

	start := time.Now()
	err := g.Wait(context.Background())
	require.NoError(t, err)
	require.Less(t, time.Since(start), time.Second)
}

func TestSecondCallWaits(t *testing.T) {
	g := New("test", 50*time.Millisecond)

	require.NoError(t, g.Wait(context.Background()))

	start := time.Now()
	require.NoError(t, g.Wait(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
}

func TestCancelledContext(t *testing.T) {
	g := New("test", time.Hour)

	require.NoError(t, g.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := g.Wait(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
