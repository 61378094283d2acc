package cpuload

import (
	"context"

	"github.com/shirou/gopsutil/v4/cpu"
)

// LocalProvider reads this machine's counters through gopsutil.
type LocalProvider struct {
	// times is cpu.TimesWithContext, replaceable in tests.
	times func(ctx context.Context, perCPU bool) ([]cpu.TimesStat, error)
}

// NewLocalProvider returns a provider for the local machine.
func NewLocalProvider() *LocalProvider {
	return &LocalProvider{times: cpu.TimesWithContext}
}

// Snapshot averages the per-core counters.
func (p *LocalProvider) Snapshot(ctx context.Context) (Snapshot, error) {
	stats, err := p.times(ctx, true)
	if err != nil {
		return Snapshot{}, err
	}
	return averageTimes(stats), nil
}

func averageTimes(stats []cpu.TimesStat) Snapshot {
	if len(stats) == 0 {
		return Snapshot{}
	}

	var sum Snapshot
	for _, t := range stats {
		sum.Idle += t.Idle
		sum.Total += t.User + t.Nice + t.System + t.Idle + t.Iowait + t.Irq + t.Softirq + t.Steal
	}
	n := float64(len(stats))
	return Snapshot{Idle: sum.Idle / n, Total: sum.Total / n}
}
