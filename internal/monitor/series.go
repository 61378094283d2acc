package monitor

// DefaultHistorySize is the number of samples each series keeps.
const DefaultHistorySize = 100

// Series accumulates one metric stream: the latest reading, running
// extrema and a bounded history.
//
// Readings are optional. A failed reading clears the current value and
// leaves everything else alone. A reading of exactly zero is a real value:
// it becomes current and enters the history, but never an extremum, so a
// probe that briefly reports 0 can't drag the minimum down.
//
// Series is not safe for concurrent use; the Loop is its only writer.
type Series struct {
	current    float64
	hasCurrent bool

	min, max   float64
	hasExtrema bool

	history *ringBuffer
}

// NewSeries creates an empty series keeping up to capacity samples.
func NewSeries(capacity int) *Series {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &Series{history: newRingBuffer(capacity)}
}

// Update folds one reading into the series. ok is false when the reading
// failed or couldn't be parsed.
func (s *Series) Update(v float64, ok bool) {
	if !ok {
		s.current, s.hasCurrent = 0, false
		return
	}

	s.current, s.hasCurrent = v, true

	if v != 0 {
		switch {
		case !s.hasExtrema:
			s.min, s.max, s.hasExtrema = v, v, true
		case v < s.min:
			s.min = v
		case v > s.max:
			s.max = v
		}
	}

	s.history.push(v)
}

// Current returns the latest reading, if the last update had one.
func (s *Series) Current() (float64, bool) {
	return s.current, s.hasCurrent
}

// Min returns the smallest nonzero reading seen.
func (s *Series) Min() (float64, bool) {
	return s.min, s.hasExtrema
}

// Max returns the largest nonzero reading seen.
func (s *Series) Max() (float64, bool) {
	return s.max, s.hasExtrema
}

// History returns a copy of the retained samples, oldest first.
func (s *Series) History() []float64 {
	return s.history.getAll()
}

// Len returns how many samples are retained.
func (s *Series) Len() int {
	return s.history.count
}

// Cap returns the history capacity.
func (s *Series) Cap() int {
	return s.history.size
}

// Snapshot returns an immutable copy of the series.
func (s *Series) Snapshot() SeriesSnapshot {
	return SeriesSnapshot{
		Current:    s.current,
		HasCurrent: s.hasCurrent,
		Min:        s.min,
		Max:        s.max,
		HasExtrema: s.hasExtrema,
		History:    s.History(),
	}
}

// ringBuffer is a fixed-size circular buffer for float64 values.
type ringBuffer struct {
	data  []float64
	head  int
	count int
	size  int
}

func newRingBuffer(size int) *ringBuffer {
	return &ringBuffer{
		data: make([]float64, size),
		size: size,
	}
}

// push adds a value, overwriting the oldest once full.
func (r *ringBuffer) push(value float64) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getLast returns the last count values in chronological order (oldest first).
func (r *ringBuffer) getLast(count int) []float64 {
	if count <= 0 || r.count == 0 {
		return nil
	}
	if count > r.count {
		count = r.count
	}

	result := make([]float64, count)

	// head is the next write position, so the newest value is at head-1
	start := (r.head - count + r.size) % r.size
	for i := 0; i < count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}

// getAll returns all stored values in chronological order.
func (r *ringBuffer) getAll() []float64 {
	return r.getLast(r.count)
}
