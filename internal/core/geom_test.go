package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, want 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, want 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, want float64
	}{
		{1.0, 0.1, 10.0, 1.0},
		{0.01, 0.1, 10.0, 0.1},
		{50.0, 0.1, 10.0, 10.0},
	}

	for _, tt := range tests {
		if got := ClampF(tt.val, tt.min, tt.max); got != tt.want {
			t.Errorf("ClampF(%v, %v, %v) = %v, want %v", tt.val, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
}
