package retention

import (
	"context"
	"time"

	"github.com/diwise/alarmer/internal/pkg/infrastructure/logging"
	"github.com/diwise/alarmer/internal/pkg/infrastructure/metrics"
	"github.com/rs/zerolog"
)

//go:generate moq -rm -out purger_mock.go . Purger

type Purger interface {
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Cleaner interface {
	Start()
	Stop()
}

type cleanerImpl struct {
	done     chan bool
	log      zerolog.Logger
	purger   Purger
	interval time.Duration
	horizon  time.Duration
	now      func() time.Time
}

// New returns a cleaner that every interval removes audit log entries older
// than the horizon
func New(ctx context.Context, purger Purger, interval, horizon time.Duration) Cleaner {
	return &cleanerImpl{
		done:     make(chan bool),
		log:      logging.GetLoggerFromContext(ctx).With().Str("component", "retention").Logger(),
		purger:   purger,
		interval: interval,
		horizon:  horizon,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (c *cleanerImpl) Start() {
	c.log.Info().Msgf("purging log entries older than %s every %s", c.horizon, c.interval)
	go backgroundWorker(c, c.done)
}

func (c *cleanerImpl) Stop() {
	c.done <- true
}

func backgroundWorker(c *cleanerImpl, done <-chan bool) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			c.purge()
		}
	}
}

func (c *cleanerImpl) purge() {
	ctx := logging.NewContextWithLogger(context.Background(), c.log)
	cutoff := c.now().Add(-c.horizon)

	rows, err := c.purger.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		c.log.Error().Err(err).Msg("could not purge log entries")
		return
	}

	metrics.Purged(rows)

	if rows == 0 {
		c.log.Debug().Msg("no log entries to purge")
		return
	}

	c.log.Info().Msgf("purged %d log entries older than %s", rows, cutoff.Format(time.RFC3339))
}
