package retention

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestPurgeUsesHorizonFromNow(t *testing.T) {
	is := is.New(t)

	now, _ := time.Parse(time.RFC3339, "2023-03-01T12:00:00Z")

	purger := &PurgerMock{
		PurgeOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			return 3, nil
		},
	}

	c := New(context.Background(), purger, time.Minute, 24*time.Hour).(*cleanerImpl)
	c.now = func() time.Time { return now }

	c.purge()

	is.Equal(len(purger.PurgeOlderThanCalls()), 1)
	is.Equal(purger.PurgeOlderThanCalls()[0].Cutoff, now.Add(-24*time.Hour))
}

func TestCleanerKeepsRunningAfterFailure(t *testing.T) {
	is := is.New(t)

	ticks := make(chan int, 10)
	count := 0

	purger := &PurgerMock{
		PurgeOlderThanFunc: func(ctx context.Context, cutoff time.Time) (int64, error) {
			count++
			ticks <- count
			if count == 1 {
				return 0, errors.New("database unavailable")
			}
			return 0, nil
		},
	}

	c := New(context.Background(), purger, 10*time.Millisecond, time.Hour)
	c.Start()

	for i := 1; i <= 3; i++ {
		select {
		case n := <-ticks:
			is.Equal(n, i)
		case <-time.After(2 * time.Second):
			t.Fatalf("cleaner stopped after %d runs", i-1)
		}
	}

	c.Stop()
}
