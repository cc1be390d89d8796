// Package reference holds brute-force order-statistic filters used as
// oracles by tests and by cmd/quickfilter-bench. Every window is recomputed
// from scratch, so they are O(n·w·log w) — slow on purpose, with no state to
// get wrong.
package reference

import "sort"

// Edge-handling mode names, matching quickfilter's EdgeMode values. The
// package deliberately keeps its own padding implementation so the oracle
// shares no code with the filter it checks.
const (
	Constant = "constant"
	Nearest  = "nearest"
	Reflect  = "reflect"
	Mirror   = "mirror"
	Wrap     = "wrap"
)

// Extend pads signal with front samples before and back samples after,
// synthesized per mode. Unknown modes and pads larger than the signal
// return nil.
func Extend(signal []float64, front, back int, mode string, cval float64) []float64 {
	n := len(signal)
	if front > n || back > n {
		return nil
	}

	var frontBlock, backBlock []float64
	switch mode {
	case Constant:
		for i := 0; i < front; i++ {
			frontBlock = append(frontBlock, cval)
		}
		for i := 0; i < back; i++ {
			backBlock = append(backBlock, cval)
		}
	case Nearest:
		for i := 0; i < front; i++ {
			frontBlock = append(frontBlock, signal[0])
		}
		for i := 0; i < back; i++ {
			backBlock = append(backBlock, signal[n-1])
		}
	case Reflect, Mirror:
		for i := front - 1; i >= 0; i-- {
			frontBlock = append(frontBlock, signal[i])
		}
		for i := n - 1; i >= n-back; i-- {
			backBlock = append(backBlock, signal[i])
		}
	case Wrap:
		frontBlock = append(frontBlock, signal[n-front:]...)
		backBlock = append(backBlock, signal[:back]...)
	default:
		return nil
	}

	out := make([]float64, 0, front+n+back)
	out = append(out, frontBlock...)
	out = append(out, signal...)
	out = append(out, backBlock...)
	return out
}

// RankFilter selects the floor(windowSize×percent)-th smallest sample
// (clamped to windowSize-1) of every complete window that a left-to-right
// sliding pass over working emits: len(working)-windowSize windows, the
// window for output j covering working[j .. j+windowSize-1].
func RankFilter(working []float64, windowSize int, percent float64) []float64 {
	m := len(working)
	if windowSize < 1 || m < windowSize {
		return nil
	}

	idx := int(float64(windowSize) * percent)
	if idx >= windowSize {
		idx = windowSize - 1
	}

	out := make([]float64, m-windowSize)
	window := make([]float64, windowSize)
	for j := range out {
		copy(window, working[j:j+windowSize])
		sort.Float64s(window)
		out[j] = window[idx]
	}
	return out
}

// MedFilt applies a centered median filter with zero-padding
// (scipy.signal.medfilt compatible). kernelSize must be a positive odd
// integer.
func MedFilt(data []float64, kernelSize int) []float64 {
	if kernelSize < 1 || kernelSize%2 == 0 {
		panic("kernelSize must be positive odd integer")
	}
	n := len(data)
	if n == 0 {
		return nil
	}

	half := kernelSize / 2
	result := make([]float64, n)
	window := make([]float64, kernelSize)

	for i := 0; i < n; i++ {
		window = window[:0]
		for j := -half; j <= half; j++ {
			idx := i + j
			if idx < 0 || idx >= n {
				window = append(window, 0.0) // zero-padding
			} else {
				window = append(window, data[idx])
			}
		}
		sort.Float64s(window)
		result[i] = window[kernelSize/2]
	}
	return result
}
