package quickfilter

import "fmt"

// prepareOutput validates a caller-supplied result buffer or allocates a
// fresh zeroed one. A supplied buffer must already have exactly length
// elements; it is never resized and nothing is written to it here.
func prepareOutput(out []float64, length int) ([]float64, error) {
	if out == nil {
		return make([]float64, length), nil
	}
	if len(out) != length {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrOutputLength, len(out), length)
	}
	return out, nil
}
