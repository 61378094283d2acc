// Package cpuload measures instantaneous CPU utilization from two snapshots
// of the cumulative per-core tick counters taken a fixed interval apart.
package cpuload

import (
	"context"
	"math"
	"time"

	"github.com/rileyhilliard/boincmon/internal/errors"
)

// DefaultInterval is the gap between the two snapshots.
const DefaultInterval = time.Second

// Snapshot holds cumulative ticks averaged across cores.
// Total is the sum of every busy and idle category; Idle is the idle category alone.
type Snapshot struct {
	Idle  float64
	Total float64
}

// SnapshotProvider reads the current tick counters.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// Sampler derives a utilization percentage from a SnapshotProvider.
type Sampler struct {
	Provider SnapshotProvider
	Interval time.Duration
}

// NewSampler returns a Sampler over provider. A non-positive interval
// falls back to DefaultInterval.
func NewSampler(provider SnapshotProvider, interval time.Duration) *Sampler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sampler{Provider: provider, Interval: interval}
}

// SampleLoad blocks for one Interval between two snapshots and returns the
// busy percentage over that window, with two decimals.
func (s *Sampler) SampleLoad(ctx context.Context) (float64, error) {
	start, err := s.Provider.Snapshot(ctx)
	if err != nil {
		return 0, s.wrap(ctx, err)
	}

	timer := time.NewTimer(s.Interval)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case <-timer.C:
	}

	end, err := s.Provider.Snapshot(ctx)
	if err != nil {
		return 0, s.wrap(ctx, err)
	}

	return Utilization(start, end), nil
}

func (s *Sampler) wrap(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.IsCode(err, errors.ErrSource) || errors.IsCode(err, errors.ErrTimeout) {
		return err
	}
	return errors.WrapWithCode(err, errors.ErrSource,
		"Couldn't read CPU counters",
		"Check that /proc/stat is readable on the monitored host.")
}

// Utilization returns the busy share between two snapshots as a percentage,
// rounded half up to two decimals. A window with no elapsed ticks is 0.
func Utilization(start, end Snapshot) float64 {
	dIdle := end.Idle - start.Idle
	dTotal := end.Total - start.Total
	if dTotal <= 0 {
		return 0
	}
	return (10000 - math.Floor(10000*dIdle/dTotal+0.5)) / 100
}
