package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_Empty(t *testing.T) {
	s := NewSeries(5)

	_, ok := s.Current()
	assert.False(t, ok)
	_, ok = s.Min()
	assert.False(t, ok)
	_, ok = s.Max()
	assert.False(t, ok)
	assert.Empty(t, s.History())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 5, s.Cap())
}

func TestSeries_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultHistorySize, NewSeries(0).Cap())
	assert.Equal(t, DefaultHistorySize, NewSeries(-3).Cap())
}

func TestSeries_HistoryKeepsLastSamplesInOrder(t *testing.T) {
	s := NewSeries(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Update(v, true)
	}

	assert.Equal(t, []float64{3, 4, 5}, s.History())
	assert.Equal(t, 3, s.Len())
}

func TestSeries_HistoryNeverExceedsCapacity(t *testing.T) {
	s := NewSeries(4)
	for i := 0; i < 25; i++ {
		s.Update(float64(i%7), true)
		assert.LessOrEqual(t, s.Len(), s.Cap())
		assert.LessOrEqual(t, len(s.History()), 4)
	}
}

func TestSeries_PositiveSamplesStayWithinExtrema(t *testing.T) {
	s := NewSeries(10)
	for _, v := range []float64{48.3, 52.1, 45.0, 50.0, 61.7, 44.9} {
		s.Update(v, true)

		cur, _ := s.Current()
		lo, _ := s.Min()
		hi, _ := s.Max()
		assert.LessOrEqual(t, lo, cur)
		assert.LessOrEqual(t, cur, hi)
	}

	lo, _ := s.Min()
	hi, _ := s.Max()
	assert.Equal(t, 44.9, lo)
	assert.Equal(t, 61.7, hi)
}

func TestSeries_FirstNonzeroSetsBothExtrema(t *testing.T) {
	s := NewSeries(10)
	s.Update(42, true)

	lo, ok := s.Min()
	require.True(t, ok)
	hi, _ := s.Max()
	assert.Equal(t, 42.0, lo)
	assert.Equal(t, 42.0, hi)
}

func TestSeries_ZeroNeverChangesExtrema(t *testing.T) {
	s := NewSeries(10)

	s.Update(0, true)
	_, ok := s.Min()
	assert.False(t, ok, "a leading zero is not an extremum")

	s.Update(30, true)
	s.Update(0, true)

	lo, _ := s.Min()
	hi, _ := s.Max()
	assert.Equal(t, 30.0, lo)
	assert.Equal(t, 30.0, hi)

	cur, ok := s.Current()
	assert.True(t, ok)
	assert.Equal(t, 0.0, cur)
	assert.Equal(t, []float64{0, 30, 0}, s.History())
}

func TestSeries_FailedReadingOnlyClearsCurrent(t *testing.T) {
	s := NewSeries(10)
	s.Update(40, true)
	s.Update(50, true)

	s.Update(99, false)

	_, ok := s.Current()
	assert.False(t, ok)
	lo, _ := s.Min()
	hi, _ := s.Max()
	assert.Equal(t, 40.0, lo)
	assert.Equal(t, 50.0, hi)
	assert.Equal(t, []float64{40, 50}, s.History())
}

func TestSeries_SnapshotIsACopy(t *testing.T) {
	s := NewSeries(3)
	s.Update(1, true)
	s.Update(2, true)

	snap := s.Snapshot()
	snap.History[0] = 100
	s.Update(3, true)

	assert.Equal(t, []float64{100, 2}, snap.History)
	assert.Equal(t, []float64{1, 2, 3}, s.History())
	assert.True(t, snap.HasCurrent)
	assert.Equal(t, 2.0, snap.Current)
}

func TestRingBuffer_GetLast(t *testing.T) {
	r := newRingBuffer(4)
	assert.Nil(t, r.getLast(2))

	for _, v := range []float64{1, 2, 3, 4, 5, 6} {
		r.push(v)
	}

	assert.Equal(t, []float64{5, 6}, r.getLast(2))
	assert.Equal(t, []float64{3, 4, 5, 6}, r.getLast(10))
	assert.Nil(t, r.getLast(0))
}
