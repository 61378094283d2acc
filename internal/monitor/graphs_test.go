package monitor

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartRange(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		scale  ChartScale
		wantLo float64
		wantHi float64
	}{
		{"percent ignores data", []float64{10, 300}, ScalePercent, 0, 100},
		{"auto empty falls back", nil, ScaleAuto, 0, 100},
		{"auto fits data", []float64{45, 52, 40}, ScaleAuto, 40, 52},
		{"auto flat gets headroom", []float64{48, 48}, ScaleAuto, 47, 49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := chartRange(tt.data, tt.scale)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, 0.5, normalizeValue(50, 0, 100))
	assert.Equal(t, 0.0, normalizeValue(0, 0, 100))
	assert.Equal(t, 0.5, normalizeValue(7, 7, 7), "degenerate range centers")
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-5, 10))
	assert.Equal(t, 10, clampInt(15, 10))
	assert.Equal(t, 4, clampInt(4, 10))
}

func TestRenderBrailleGraph(t *testing.T) {
	color := lipgloss.Color("1")

	t.Run("single full sample fills the right sub-column", func(t *testing.T) {
		assert.Equal(t, "⢸", RenderBrailleGraph([]float64{100}, 1, 1, 0, 100, color))
	})

	t.Run("two full samples fill the cell", func(t *testing.T) {
		assert.Equal(t, "⣿", RenderBrailleGraph([]float64{100, 100}, 1, 1, 0, 100, color))
	})

	t.Run("empty data renders a blank grid", func(t *testing.T) {
		assert.Equal(t, "⠀⠀\n⠀⠀", RenderBrailleGraph(nil, 2, 2, 0, 100, color))
	})

	t.Run("zero plots nothing", func(t *testing.T) {
		assert.Equal(t, "⠀", RenderBrailleGraph([]float64{0, 0}, 1, 1, 0, 100, color))
	})

	t.Run("half height fills the bottom row only", func(t *testing.T) {
		out := RenderBrailleGraph([]float64{50, 50}, 1, 2, 0, 100, color)
		assert.Equal(t, "⠀\n⣿", out)
	})

	t.Run("invalid size", func(t *testing.T) {
		assert.Empty(t, RenderBrailleGraph([]float64{1}, 0, 1, 0, 100, color))
		assert.Empty(t, RenderBrailleGraph([]float64{1}, 1, 0, 0, 100, color))
	})
}

func TestRenderChart(t *testing.T) {
	out := RenderChart([]float64{10, 90}, 20, ChartHeight, ScalePercent, ColorCPU)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, ChartHeight)
	assert.True(t, strings.HasPrefix(lines[0], "100.0 ┤"))
	assert.True(t, strings.HasPrefix(lines[ChartHeight-1], "  0.0 ┤"))
	assert.True(t, strings.HasPrefix(lines[2], "      │"))
	for _, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line))
	}
}

func TestRenderChart_AutoScaleLabels(t *testing.T) {
	out := RenderChart([]float64{45.5, 52.25}, 20, 3, ScaleAuto, ColorTemperature)
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], " 52.2 ┤") || strings.HasPrefix(lines[0], " 52.3 ┤"))
	assert.True(t, strings.HasPrefix(lines[2], " 45.5 ┤"))
}

func TestResampleData(t *testing.T) {
	t.Run("downsampling keeps peaks", func(t *testing.T) {
		assert.Equal(t, []float64{5, 9}, resampleData([]float64{1, 5, 2, 9}, 2))
	})

	t.Run("same size returns input", func(t *testing.T) {
		assert.Equal(t, []float64{1, 2}, resampleData([]float64{1, 2}, 2))
	})

	t.Run("single value fills", func(t *testing.T) {
		assert.Equal(t, []float64{3, 3, 3}, resampleData([]float64{3}, 3))
	})

	t.Run("upsampling interpolates", func(t *testing.T) {
		assert.Equal(t, []float64{0, 5, 10}, resampleData([]float64{0, 10}, 3))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, resampleData(nil, 3))
	})
}
