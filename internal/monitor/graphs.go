package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille character rendering for high-resolution terminal graphs.
//
// Braille patterns use a 2x4 dot matrix per character:
//
//	  Col 0  Col 1
//	Row 0:   ⠁      ⠈     (dots 1, 4)
//	Row 1:   ⠂      ⠐     (dots 2, 5)
//	Row 2:   ⠄      ⠠     (dots 3, 6)
//	Row 3:   ⡀      ⢀     (dots 7, 8)
//
// Unicode braille starts at U+2800 (empty) and uses bit patterns:
// bit 0 = dot 1, bit 1 = dot 2, bit 2 = dot 3, bit 3 = dot 4,
// bit 4 = dot 5, bit 5 = dot 6, bit 6 = dot 7, bit 7 = dot 8

const brailleBase = '⠀'

// ChartHeight is the number of text rows in a series chart.
const ChartHeight = 5

// axisWidth is the width of the y-axis gutter: a 5-wide label plus " ┤".
const axisWidth = 7

// ChartScale picks the y range of a chart.
type ChartScale int

const (
	// ScalePercent fixes the range to 0-100.
	ScalePercent ChartScale = iota
	// ScaleAuto fits the range to the data.
	ScaleAuto
)

// chartRange returns the y bounds for data under the given scale.
// A flat series gets one unit of headroom each way so it plots mid-chart.
func chartRange(data []float64, scale ChartScale) (lo, hi float64) {
	if scale == ScalePercent || len(data) == 0 {
		return 0, 100
	}

	lo, hi = data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi-lo < 1 {
		lo--
		hi++
	}
	return lo, hi
}

// normalizeValue converts a value to 0-1 range given min/max bounds.
func normalizeValue(val, minVal, maxVal float64) float64 {
	if maxVal > minVal {
		return (val - minVal) / (maxVal - minVal)
	}
	return 0.5
}

// clampInt clamps an integer to a range [0, maxVal].
func clampInt(val, maxVal int) int {
	if val < 0 {
		return 0
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// brailleDots maps row/column to the bit offset for braille pattern
// [row][col] where row is 0-3 (top to bottom) and col is 0-1 (left to right)
var brailleDots = [4][2]uint8{
	{0, 3}, // Row 0: dots 1 and 4
	{1, 4}, // Row 1: dots 2 and 5
	{2, 5}, // Row 2: dots 3 and 6
	{6, 7}, // Row 3: dots 7 and 8
}

// RenderBrailleGraph renders data as a filled braille area graph, width
// characters wide and height rows tall. Each character holds 2 samples and
// 4 vertical levels. Short series are right-aligned so the newest sample
// is always at the right edge; long ones are downsampled keeping peaks.
func RenderBrailleGraph(data []float64, width, height int, lo, hi float64, color lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	totalDots := height * 4
	targetPoints := width * 2

	resampled := data
	if len(data) > targetPoints {
		resampled = resampleData(data, targetPoints)
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	horizOffset := targetPoints - len(resampled)
	if horizOffset < 0 {
		horizOffset = 0
	}

	for i, val := range resampled {
		normalized := normalizeValue(val, lo, hi)
		dotHeight := clampInt(int(normalized*float64(totalDots)+0.5), totalDots)

		charCol := (i + horizOffset) / 2
		if charCol >= width {
			continue
		}
		subCol := (i + horizOffset) % 2

		// Fill dots from bottom up
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - (dot / 4)
			subRow := 3 - (dot % 4)
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	style := lipgloss.NewStyle().Foreground(color)
	lines := make([]string, height)
	for i, row := range grid {
		lines[i] = style.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// RenderChart renders a braille graph with a y-axis gutter showing the top
// and bottom of the range. width includes the gutter.
func RenderChart(data []float64, width, height int, scale ChartScale, color lipgloss.Color) string {
	if height <= 0 {
		return ""
	}
	graphWidth := width - axisWidth
	if graphWidth < 1 {
		graphWidth = 1
	}

	lo, hi := chartRange(data, scale)
	graph := strings.Split(RenderBrailleGraph(data, graphWidth, height, lo, hi, color), "\n")

	lines := make([]string, len(graph))
	for i, g := range graph {
		var gutter string
		switch i {
		case 0:
			gutter = fmt.Sprintf("%5.1f ┤", hi)
		case len(graph) - 1:
			gutter = fmt.Sprintf("%5.1f ┤", lo)
		default:
			gutter = strings.Repeat(" ", axisWidth-1) + "│"
		}
		lines[i] = AxisStyle.Render(gutter) + g
	}
	return strings.Join(lines, "\n")
}

// resampleData resamples data to the target size.
// When downsampling (compressing), uses max-based sampling to preserve peaks/spikes.
// When upsampling (expanding), uses linear interpolation.
func resampleData(data []float64, targetSize int) []float64 {
	if len(data) == 0 || targetSize <= 0 {
		return nil
	}

	if len(data) == targetSize {
		return data
	}

	result := make([]float64, targetSize)

	if len(data) == 1 {
		for i := range result {
			result[i] = data[0]
		}
		return result
	}

	// Downsampling: use max within each bucket to preserve peaks
	if len(data) > targetSize {
		bucketSize := float64(len(data)) / float64(targetSize)
		for i := 0; i < targetSize; i++ {
			start := int(float64(i) * bucketSize)
			end := int(float64(i+1) * bucketSize)
			if end > len(data) {
				end = len(data)
			}
			if start >= end {
				start = end - 1
			}

			maxVal := data[start]
			for j := start + 1; j < end; j++ {
				if data[j] > maxVal {
					maxVal = data[j]
				}
			}
			result[i] = maxVal
		}
		return result
	}

	// Upsampling: linear interpolation
	scale := float64(len(data)-1) / float64(targetSize-1)
	for i := 0; i < targetSize; i++ {
		pos := float64(i) * scale
		idx := int(pos)
		frac := pos - float64(idx)

		if idx >= len(data)-1 {
			result[i] = data[len(data)-1]
		} else {
			result[i] = data[idx]*(1-frac) + data[idx+1]*frac
		}
	}
	return result
}
