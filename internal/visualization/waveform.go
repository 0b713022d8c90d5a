package visualization

import (
	"fmt"
	"strings"
)

// WaveformOptions sizes a rendered trace.
type WaveformOptions struct {
	Width  int
	Height int
}

// DefaultWaveformOptions fits a typical 80-column terminal.
var DefaultWaveformOptions = WaveformOptions{Width: 72, Height: 16}

// Waveform renders samples as a terminal trace. Columns average the
// samples falling into them; the zero line is drawn when the data
// crosses it.
func Waveform(samples []float64, delta float64, opts WaveformOptions) string {
	if opts.Width < 10 || opts.Height < 4 {
		opts = DefaultWaveformOptions
	}
	if len(samples) == 0 {
		return "(no samples)\n"
	}

	columns := resample(samples, opts.Width)
	min, max := columns[0], columns[0]
	for _, v := range columns {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max == min {
		max = min + 1
	}

	grid := make([][]byte, opts.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(" ", opts.Width))
	}

	rowFor := func(v float64) int {
		f := (v - min) / (max - min)
		return opts.Height - 1 - int(f*float64(opts.Height-1)+0.5)
	}

	if min < 0 && max > 0 {
		zero := rowFor(0)
		for x := 0; x < opts.Width; x++ {
			grid[zero][x] = '-'
		}
	}
	for x, v := range columns {
		grid[rowFor(v)][x] = '*'
	}

	var b strings.Builder
	for _, row := range grid {
		b.Write(row)
		b.WriteByte('\n')
	}
	duration := float64(len(samples)-1) * delta
	fmt.Fprintf(&b, "%d samples, dt %g s, %.1f s total, amplitude %.4g..%.4g\n",
		len(samples), delta, duration, min, max)
	return b.String()
}

// resample reduces samples to width columns by averaging each bucket.
func resample(samples []float64, width int) []float64 {
	if len(samples) <= width {
		out := make([]float64, len(samples))
		copy(out, samples)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		lo := i * len(samples) / width
		hi := (i + 1) * len(samples) / width
		if hi <= lo {
			hi = lo + 1
		}
		sum := 0.0
		for _, v := range samples[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}
