package quickfilter

import (
	"errors"
	"testing"
)

func TestExtendEdges(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name       string
		windowSize int
		mode       EdgeMode
		cval       float64
		expected   []float64
	}{
		{
			name:       "constant even window",
			windowSize: 4,
			mode:       EdgeConstant,
			cval:       9,
			expected:   []float64{9, 9, 1, 2, 3, 4, 5, 9, 9},
		},
		{
			name:       "nearest even window",
			windowSize: 4,
			mode:       EdgeNearest,
			expected:   []float64{1, 1, 1, 2, 3, 4, 5, 5, 5},
		},
		{
			name:       "reflect even window",
			windowSize: 4,
			mode:       EdgeReflect,
			expected:   []float64{2, 1, 1, 2, 3, 4, 5, 5, 4},
		},
		{
			name:       "mirror aliases reflect",
			windowSize: 4,
			mode:       EdgeMirror,
			expected:   []float64{2, 1, 1, 2, 3, 4, 5, 5, 4},
		},
		{
			name:       "wrap even window",
			windowSize: 4,
			mode:       EdgeWrap,
			expected:   []float64{4, 5, 1, 2, 3, 4, 5, 1, 2},
		},
		{
			// Odd windows put the extra padding sample on the back
			// block, keeping the extended length at n+windowSize.
			name:       "constant odd window",
			windowSize: 3,
			mode:       EdgeConstant,
			cval:       9,
			expected:   []float64{9, 1, 2, 3, 4, 5, 9, 9},
		},
		{
			name:       "reflect odd window",
			windowSize: 3,
			mode:       EdgeReflect,
			expected:   []float64{1, 1, 2, 3, 4, 5, 5, 4},
		},
		{
			name:       "wrap odd window",
			windowSize: 3,
			mode:       EdgeWrap,
			expected:   []float64{5, 1, 2, 3, 4, 5, 1, 2},
		},
		{
			name:       "window of one",
			windowSize: 1,
			mode:       EdgeNearest,
			expected:   []float64{1, 2, 3, 4, 5, 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extendEdges(signal, tt.windowSize, tt.mode, tt.cval)
			if err != nil {
				t.Fatalf("extendEdges returned error: %v", err)
			}
			if len(got) != len(signal)+tt.windowSize {
				t.Fatalf("extended length = %d, expected %d", len(got), len(signal)+tt.windowSize)
			}
			for i := range tt.expected {
				if got[i] != tt.expected[i] {
					t.Errorf("extended[%d] = %v, expected %v (full: %v)", i, got[i], tt.expected[i], got)
				}
			}
		})
	}
}

func TestExtendEdgesInvalidMode(t *testing.T) {
	_, err := extendEdges([]float64{1, 2, 3}, 2, EdgeMode("taper"), 0)
	if !errors.Is(err, ErrInvalidEdgeMode) {
		t.Errorf("error = %v, expected ErrInvalidEdgeMode", err)
	}
}

func TestExtendEdgesWrapBlocks(t *testing.T) {
	// The front block must hold the signal's trailing samples and the
	// back block its leading samples.
	signal := []float64{10, 20, 30, 40, 50, 60}
	windowSize := 6
	half := windowSize / 2

	got, err := extendEdges(signal, windowSize, EdgeWrap, 0)
	if err != nil {
		t.Fatalf("extendEdges returned error: %v", err)
	}
	for i := 0; i < half; i++ {
		if got[i] != signal[len(signal)-half+i] {
			t.Errorf("front[%d] = %v, expected %v", i, got[i], signal[len(signal)-half+i])
		}
		if got[half+len(signal)+i] != signal[i] {
			t.Errorf("back[%d] = %v, expected %v", i, got[half+len(signal)+i], signal[i])
		}
	}
}
