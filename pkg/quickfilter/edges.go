package quickfilter

import "fmt"

// EdgeMode selects how samples beyond the signal boundary are synthesized
// when a window overhangs the signal.
type EdgeMode string

const (
	// EdgeConstant pads with ConstantValue.
	EdgeConstant EdgeMode = "constant"
	// EdgeNearest repeats the boundary sample.
	EdgeNearest EdgeMode = "nearest"
	// EdgeReflect reverses the samples adjacent to the boundary.
	EdgeReflect EdgeMode = "reflect"
	// EdgeMirror is an alias of EdgeReflect; the two are kept as distinct
	// mode values so a boundary-including mirror convention can be split
	// out later without an API change.
	EdgeMirror EdgeMode = "mirror"
	// EdgeWrap treats the signal as periodic.
	EdgeWrap EdgeMode = "wrap"
)

// extendBy returns a copy of signal with front synthetic samples prepended
// and back appended, chosen per mode. front and back must not exceed
// len(signal); every caller derives them from a window size already
// validated against the signal length.
func extendBy(signal []float64, front, back int, mode EdgeMode, cval float64) ([]float64, error) {
	n := len(signal)
	out := make([]float64, front+n+back)
	copy(out[front:], signal)

	switch mode {
	case EdgeConstant:
		for i := 0; i < front; i++ {
			out[i] = cval
		}
		for i := 0; i < back; i++ {
			out[front+n+i] = cval
		}
	case EdgeNearest:
		for i := 0; i < front; i++ {
			out[i] = signal[0]
		}
		for i := 0; i < back; i++ {
			out[front+n+i] = signal[n-1]
		}
	case EdgeReflect, EdgeMirror:
		// Front block: the leading samples, reversed. Back block: the
		// trailing samples, reversed.
		for i := 0; i < front; i++ {
			out[i] = signal[front-1-i]
		}
		for i := 0; i < back; i++ {
			out[front+n+i] = signal[n-1-i]
		}
	case EdgeWrap:
		// Front block: the trailing samples. Back block: the leading ones.
		for i := 0; i < front; i++ {
			out[i] = signal[n-front+i]
		}
		for i := 0; i < back; i++ {
			out[front+n+i] = signal[i]
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidEdgeMode, mode)
	}
	return out, nil
}

// extendEdges pads signal for the same-length sliding pass. The total
// padding always equals windowSize, so the extended length is
// len(signal)+windowSize in every case; odd windows put the extra sample on
// the back block.
func extendEdges(signal []float64, windowSize int, mode EdgeMode, cval float64) ([]float64, error) {
	half := windowSize / 2
	return extendBy(signal, half, windowSize-half, mode, cval)
}
