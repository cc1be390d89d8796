package quickfilter

import "errors"

// Sentinel errors returned by Filter and OrderStatisticStore. They are
// usually wrapped with additional context, so match them with errors.Is.
var (
	// ErrSignalTooShort indicates the signal has fewer samples than the
	// window size (or the window size is not positive).
	ErrSignalTooShort = errors.New("signal shorter than window size")

	// ErrInvalidEdgeMode indicates an unrecognized edge-handling mode.
	ErrInvalidEdgeMode = errors.New("invalid edge-handling mode")

	// ErrInvalidTruncateMode indicates an unrecognized truncation mode.
	ErrInvalidTruncateMode = errors.New("invalid truncation mode")

	// ErrSelectionRange indicates an effective percentile outside [0, 1].
	ErrSelectionRange = errors.New("selection percentile out of range")

	// ErrOutputLength indicates a caller-supplied output buffer whose
	// length does not match the required output length.
	ErrOutputLength = errors.New("output buffer has the wrong length")
)
