package rategate

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"
)

// Gate spaces out calls to one external service: at most one call per
// cooldown period. Remote search engines and small blog hosts both
// throttle aggressively, so the periods are long (tens of seconds).
type Gate struct {
	name string
	lim  *rate.Limiter
}

func New(name string, period time.Duration) *Gate {
	return &Gate{
		name: name,
		lim:  rate.NewLimiter(rate.Every(period), 1),
	}
}

// Wait blocks until the gate opens or the context is cancelled. When a
// delay is imposed it is surfaced to the operator, long cooldowns look
// like a hang otherwise.
func (g *Gate) Wait(ctx context.Context) error {
	r := g.lim.ReserveN(time.Now(), 1)
	delay := r.Delay()
	if delay == 0 {
		return nil
	}

	slog.Info("rate limited", "service", g.name, "until", time.Now().Add(delay).Format(time.RFC3339))

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		r.Cancel()
		return ctx.Err()
	}
}
