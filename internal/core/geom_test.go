package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got := r.ContainsF(float64(tc.x)+0.5, float64(tc.y)+0.5); got != tc.expected {
				t.Errorf("ContainsF(%d.5, %d.5) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectContainsF(t *testing.T) {
	r := NewRect(2, 0, 4, 1)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"left edge", 2, 0.99, true},
		{"just before right edge", 5.999, 0, true},
		{"right edge", 6, 0.5, false},
		{"just left of rect", 1.999, 0.5, false},
		{"above", 3, -0.001, false},
		{"nan", math.NaN(), 0.5, false},
		{"inf", math.Inf(1), 0.5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsF(tc.x, tc.y); got != tc.expected {
				t.Errorf("ContainsF(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMoveToward(t *testing.T) {
	tests := []struct {
		current, target, step, expected float64
	}{
		{0, 1, 0.25, 0.25},
		{0.9, 1, 0.25, 1},
		{1, 0, 0.5, 0.5},
		{0.2, 0, 0.5, 0},
		{0.5, 0.5, 0.1, 0.5},
	}

	for _, tc := range tests {
		if got := MoveToward(tc.current, tc.target, tc.step); got != tc.expected {
			t.Errorf("MoveToward(%v, %v, %v) = %v, expected %v", tc.current, tc.target, tc.step, got, tc.expected)
		}
	}
}

func TestHueColor(t *testing.T) {
	if HueColor(0) != ColorBrightRed {
		t.Errorf("HueColor(0) = %v, expected red", HueColor(0))
	}
	if HueColor(1) != HueColor(0) {
		t.Error("HueColor should wrap at 1")
	}
	if HueColor(-0.25) != HueColor(0.75) {
		t.Error("HueColor should wrap negative hues")
	}
	if HueColor(0.33) == HueColor(0.93) {
		t.Error("distinct tier hues should map to distinct colors")
	}
}
