package cpuload

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/sample"
)

// procStatFields are the /proc/stat columns summed into Total:
// user nice system idle iowait irq softirq steal. Guest time is already
// counted in user, so it is left out.
const procStatFields = 8

// procStatIdle is the index of the idle column within a cpuN line's values.
const procStatIdle = 3

// ProcStatProvider reads /proc/stat through a probe command, which lets the
// counters come from a remote host.
type ProcStatProvider struct {
	Command *sample.Command
}

// Snapshot runs the command and averages its cpuN lines.
func (p *ProcStatProvider) Snapshot(ctx context.Context) (Snapshot, error) {
	out, err := p.Command.Sample(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return ParseProcStat(out)
}

// ParseProcStat averages the per-core lines (cpu0, cpu1, ...) of /proc/stat.
// The aggregate "cpu " line is ignored. Kernels that report fewer than
// eight columns contribute the ones they have.
func ParseProcStat(procStat string) (Snapshot, error) {
	var sum Snapshot
	cores := 0

	scanner := bufio.NewScanner(strings.NewReader(procStat))
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "cpu") || len(line) < 4 || line[3] < '0' || line[3] > '9' {
			continue
		}

		fields := strings.Fields(line)[1:]
		if len(fields) <= procStatIdle {
			return Snapshot{}, fmt.Errorf("invalid /proc/stat cpu line: %s", line)
		}
		if len(fields) > procStatFields {
			fields = fields[:procStatFields]
		}

		for i, f := range fields {
			val, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return Snapshot{}, fmt.Errorf("failed to parse cpu field %d: %w", i+1, err)
			}
			sum.Total += val
			if i == procStatIdle {
				sum.Idle += val
			}
		}
		cores++
	}

	if err := scanner.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("error scanning /proc/stat: %w", err)
	}
	if cores == 0 {
		return Snapshot{}, errors.New(errors.ErrSource,
			"No per-core lines in /proc/stat output",
			"Check that the CPU probe prints /proc/stat (e.g. 'cat /proc/stat').")
	}

	n := float64(cores)
	return Snapshot{Idle: sum.Idle / n, Total: sum.Total / n}, nil
}
