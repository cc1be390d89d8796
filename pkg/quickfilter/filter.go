// Package quickfilter implements a sliding-window order-statistic filter
// over one-dimensional signals: each output sample is the k-th smallest
// value of the window ending at that position. Depending on the selection
// rank it acts as a min, max, median, or arbitrary-percentile filter, which
// smooths a signal with far less sensitivity to outliers than mean
// filtering.
package quickfilter

import "fmt"

// TruncateMode controls the output length relative to the input signal.
type TruncateMode string

const (
	// TruncateValid produces len(signal)-windowSize samples with no edge
	// extension. This is one fewer than the count of fully interior
	// windows; the off-by-one is retained deliberately for compatibility
	// with the implementation this package replaces.
	TruncateValid TruncateMode = "valid"
	// TruncateSame produces exactly len(signal) samples, drawing
	// out-of-range window samples from the edge extension.
	TruncateSame TruncateMode = "same"
	// TruncateFull produces len(signal)+windowSize-1 samples, one per
	// window placement overlapping the signal by at least one sample.
	TruncateFull TruncateMode = "full"
)

// Params configures one Filter invocation.
type Params struct {
	// WindowSize is the number of consecutive samples each output value
	// is selected from. Must be positive and no larger than the signal
	// length.
	WindowSize int

	// Index selects the Index-th smallest sample of each window, 0 being
	// the minimum and WindowSize-1 the maximum. When negative, Percent is
	// used instead. When set it takes precedence over Percent and is
	// converted to the equivalent percentile Index/WindowSize.
	Index int

	// Percent selects by fractional rank in [0, 1]: the sample at
	// floor(WindowSize×Percent) in sorted order. 0.5 gives a median
	// filter.
	Percent float64

	// EdgeMode chooses the boundary padding for TruncateSame and
	// TruncateFull.
	EdgeMode EdgeMode

	// TruncateMode chooses the output length policy.
	TruncateMode TruncateMode

	// ConstantValue is the padding value used by EdgeConstant.
	ConstantValue float64

	// Output, when non-nil, receives the result and must have exactly the
	// length implied by TruncateMode. When nil a fresh slice is
	// allocated.
	Output []float64
}

// DefaultParams returns a median filter configuration: percentile 0.5,
// constant zero padding, same-length output.
func DefaultParams(windowSize int) Params {
	return Params{
		WindowSize:   windowSize,
		Index:        -1,
		Percent:      0.5,
		EdgeMode:     EdgeConstant,
		TruncateMode: TruncateSame,
	}
}

// Filter runs the sliding-window order-statistic filter over signal and
// returns the filtered sequence. The signal is never modified. All
// validation happens before any output is written: on error the returned
// slice is nil and a caller-supplied Output buffer is untouched.
func Filter(signal []float64, p Params) ([]float64, error) {
	n := len(signal)
	if p.WindowSize < 1 || n < p.WindowSize {
		return nil, fmt.Errorf("%w: signal length %d, window size %d", ErrSignalTooShort, n, p.WindowSize)
	}

	switch p.EdgeMode {
	case EdgeConstant, EdgeNearest, EdgeReflect, EdgeMirror, EdgeWrap:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEdgeMode, p.EdgeMode)
	}

	percent := p.Percent
	if p.Index >= 0 {
		percent = float64(p.Index) / float64(p.WindowSize)
	}
	if percent < 0.0 || percent > 1.0 {
		return nil, fmt.Errorf("%w: effective percentile %v not in [0, 1]", ErrSelectionRange, percent)
	}

	switch p.TruncateMode {
	case TruncateValid:
		out, err := prepareOutput(p.Output, n-p.WindowSize)
		if err != nil {
			return nil, err
		}
		slidingPass(signal, p.WindowSize, percent, out)
		return out, nil

	case TruncateSame:
		extended, err := extendEdges(signal, p.WindowSize, p.EdgeMode, p.ConstantValue)
		if err != nil {
			return nil, err
		}
		out, err := prepareOutput(p.Output, n)
		if err != nil {
			return nil, err
		}
		slidingPass(extended, p.WindowSize, percent, out)
		return out, nil

	case TruncateFull:
		// One output per window placement overlapping the signal, so the
		// padding runs windowSize-1 deep on both sides and the last
		// window is flushed after the shared pass, which by itself only
		// emits windows ending strictly inside the working signal.
		pad := p.WindowSize - 1
		extended, err := extendBy(signal, pad, pad, p.EdgeMode, p.ConstantValue)
		if err != nil {
			return nil, err
		}
		out, err := prepareOutput(p.Output, n+p.WindowSize-1)
		if err != nil {
			return nil, err
		}
		store := slidingPass(extended, p.WindowSize, percent, out)
		last, err := store.Select(percent)
		if err != nil {
			return nil, err
		}
		out[len(extended)-p.WindowSize] = last
		return out, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidTruncateMode, p.TruncateMode)
	}
}

// slidingPass drives a fresh store across working left to right, writing
// one selection per full window into out. The selection for output position
// j reads a store holding exactly working[j .. j+windowSize-1]: each
// position past the warm-up first selects over the completed window, then
// evicts the sample sliding out, then admits the new one. The first
// windowSize-1 positions are warm-up and produce no output.
//
// The store is returned still holding the final windowSize samples so
// TruncateFull can flush the last window.
func slidingPass(working []float64, windowSize int, percent float64, out []float64) *OrderStatisticStore {
	store := NewOrderStatisticStore()
	for i, v := range working {
		if i >= windowSize {
			// percent is pre-validated and the store holds a full
			// window here, so Select cannot fail.
			sel, _ := store.Select(percent)
			out[i-windowSize] = sel
			store.Remove(working[i-windowSize])
		}
		store.Add(v)
	}
	return store
}
