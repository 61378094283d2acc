package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/rileyhilliard/boincmon/internal/errors"
	"github.com/rileyhilliard/boincmon/internal/logger"
	"github.com/rileyhilliard/boincmon/internal/sample"
	"github.com/rileyhilliard/boincmon/internal/tasks"
)

// DefaultInterval is the time between cycles.
const DefaultInterval = time.Second

// State is where the Loop is in its cycle.
type State int

const (
	StateIdle State = iota
	StateSampling
	StateRendering
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSampling:
		return "sampling"
	case StateRendering:
		return "rendering"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// TextSource produces raw probe output, like vcgencmd or boinccmd.
type TextSource interface {
	Sample(ctx context.Context) (string, error)
}

// LoadSource produces a CPU utilization percentage.
type LoadSource interface {
	SampleLoad(ctx context.Context) (float64, error)
}

// Sources are the three probes a cycle reads.
type Sources struct {
	Temperature TextSource
	Tasks       TextSource
	CPU         LoadSource
}

// Options configures a Loop.
type Options struct {
	Interval time.Duration
	History  int
	Host     string
	Log      logger.Logger
	// Now is the snapshot clock, time.Now when nil.
	Now func() time.Time
}

// Loop samples the sources on a fixed cadence and hands each result to a
// Renderer.
//
// Cycles never overlap. A source error moves the Loop to StateFailed, which
// is terminal: every later Run or Cycle returns the same error without
// touching the sources.
type Loop struct {
	sources  Sources
	renderer Renderer
	interval time.Duration
	host     string
	log      logger.Logger
	now      func() time.Time

	temperature *Series
	cpu         *Series

	// cycleMu serializes cycles; mu guards the fields read by State/Err/Cycles.
	cycleMu sync.Mutex
	mu      sync.Mutex
	state   State
	err     error
	cycles  int
}

// NewLoop creates an idle Loop.
func NewLoop(sources Sources, renderer Renderer, opts Options) *Loop {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Log == nil {
		opts.Log = logger.Noop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Loop{
		sources:     sources,
		renderer:    renderer,
		interval:    opts.Interval,
		host:        opts.Host,
		log:         opts.Log,
		now:         opts.Now,
		temperature: NewSeries(opts.History),
		cpu:         NewSeries(opts.History),
	}
}

// Run cycles immediately and then once per interval until ctx is done or a
// cycle fails. Cancellation is a clean stop and returns nil.
func (l *Loop) Run(ctx context.Context) error {
	if err := l.Err(); err != nil {
		return err
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		if err := l.Cycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Cycle samples every source once and renders the result. It returns the
// failure error if the Loop has failed, and ctx.Err() if ctx ends mid-cycle.
func (l *Loop) Cycle(ctx context.Context) error {
	l.cycleMu.Lock()
	defer l.cycleMu.Unlock()

	if err := l.Err(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	l.setState(StateSampling)
	r, err := l.sample(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			l.setState(StateIdle)
			return ctxErr
		}
		l.fail(err)
		return err
	}

	l.setState(StateRendering)
	snap := l.apply(r)
	l.renderer.Render(snap)
	l.setState(StateIdle)

	l.log.Debug("cycle %d: temperature %s, cpu %s, %d tasks",
		snap.Cycle, snap.Temperature.Summary(), snap.CPU.Summary(), len(snap.Rows))
	return nil
}

// State returns the current state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Err returns the error that failed the Loop, or nil.
func (l *Loop) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Cycles returns the number of cycles rendered.
func (l *Loop) Cycles() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cycles
}

type reading struct {
	temperature string
	load        float64
	tasks       string
}

type tasksResult struct {
	out string
	err error
}

// sample fetches the task list in the background while temperature and
// CPU load are read in turn.
func (l *Loop) sample(ctx context.Context) (reading, error) {
	tasksCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan tasksResult, 1)
	go func() {
		out, err := l.sources.Tasks.Sample(tasksCtx)
		done <- tasksResult{out: out, err: err}
	}()

	temp, err := l.sources.Temperature.Sample(ctx)
	if err != nil {
		return reading{}, err
	}

	load, err := l.sources.CPU.SampleLoad(ctx)
	if err != nil {
		return reading{}, err
	}

	select {
	case res := <-done:
		if res.err != nil {
			return reading{}, res.err
		}
		return reading{temperature: temp, load: load, tasks: res.out}, nil
	case <-ctx.Done():
		return reading{}, ctx.Err()
	}
}

// apply folds a reading into the series and builds the snapshot.
func (l *Loop) apply(r reading) Snapshot {
	l.temperature.Update(sample.ParseTemperature(r.temperature))
	l.cpu.Update(r.load, true)

	l.mu.Lock()
	l.cycles++
	n := l.cycles
	l.mu.Unlock()

	return Snapshot{
		Temperature: l.temperature.Snapshot(),
		CPU:         l.cpu.Snapshot(),
		Rows:        ProjectRows(tasks.Parse(r.tasks)),
		Cycle:       n,
		Time:        l.now(),
		Host:        l.host,
	}
}

func (l *Loop) fail(err error) {
	l.mu.Lock()
	l.state = StateFailed
	l.err = err
	l.mu.Unlock()

	l.log.Error("sampling stopped: %s", errors.Summary(err))

	if fr, ok := l.renderer.(FailureRenderer); ok {
		fr.RenderFailure(err)
	}
}

func (l *Loop) setState(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}
