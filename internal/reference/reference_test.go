package reference

import "testing"

func assertSequence(t *testing.T, got, expected []float64) {
	t.Helper()
	if len(got) != len(expected) {
		t.Fatalf("result = %v (length %d), expected %v (length %d)", got, len(got), expected, len(expected))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("result[%d] = %v, expected %v (full: %v)", i, got[i], expected[i], got)
		}
	}
}

func TestExtend(t *testing.T) {
	signal := []float64{1, 2, 3, 4, 5}

	tests := []struct {
		name        string
		front, back int
		mode        string
		cval        float64
		expected    []float64
	}{
		{name: "constant", front: 2, back: 2, mode: Constant, cval: 9, expected: []float64{9, 9, 1, 2, 3, 4, 5, 9, 9}},
		{name: "nearest", front: 1, back: 2, mode: Nearest, expected: []float64{1, 1, 2, 3, 4, 5, 5, 5}},
		{name: "reflect", front: 2, back: 2, mode: Reflect, expected: []float64{2, 1, 1, 2, 3, 4, 5, 5, 4}},
		{name: "wrap", front: 2, back: 2, mode: Wrap, expected: []float64{4, 5, 1, 2, 3, 4, 5, 1, 2}},
		{name: "no padding", front: 0, back: 0, mode: Constant, expected: []float64{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extend(signal, tt.front, tt.back, tt.mode, tt.cval)
			assertSequence(t, got, tt.expected)
		})
	}

	if got := Extend(signal, 1, 1, "taper", 0); got != nil {
		t.Errorf("Extend with unknown mode = %v, expected nil", got)
	}
	if got := Extend(signal, 6, 0, Wrap, 0); got != nil {
		t.Errorf("Extend with oversized pad = %v, expected nil", got)
	}
}

func TestRankFilter(t *testing.T) {
	working := []float64{5, 3, 8, 1, 9, 2}

	tests := []struct {
		name     string
		percent  float64
		expected []float64
	}{
		{name: "minimum", percent: 0.0, expected: []float64{3, 1, 1}},
		{name: "median", percent: 0.5, expected: []float64{5, 3, 8}},
		{name: "maximum", percent: 1.0, expected: []float64{8, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankFilter(working, 3, tt.percent)
			assertSequence(t, got, tt.expected)
		})
	}
}

func TestMedFilt(t *testing.T) {
	got := MedFilt([]float64{1, 5, 2, 4, 3}, 3)
	assertSequence(t, got, []float64{1, 2, 4, 3, 3})

	defer func() {
		if recover() == nil {
			t.Error("MedFilt with even kernel did not panic")
		}
	}()
	MedFilt([]float64{1, 2, 3}, 2)
}
