package core

import "testing"

func TestBoundsCenter(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		want   Point
	}{
		{"even dimensions", Bounds{X: 0, Y: 0, Width: 100, Height: 200}, Point{X: 50, Y: 100}},
		{"odd dimensions round up", Bounds{X: 0, Y: 0, Width: 101, Height: 201}, Point{X: 51, Y: 101}},
		{"offset origin", Bounds{X: 100, Y: 200, Width: 300, Height: 80}, Point{X: 250, Y: 240}},
		{"zero area", Bounds{X: 10, Y: 20, Width: 0, Height: 0}, Point{X: 10, Y: 20}},
	}

	for _, tt := range tests {
		got := tt.bounds.Center()
		if got != tt.want {
			t.Errorf("%s: Center() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 10, Y: 10, Width: 100, Height: 50}

	if !b.Contains(Point{X: 10, Y: 10}) {
		t.Error("expected top-left corner to be contained")
	}
	if b.Contains(Point{X: 110, Y: 10}) {
		t.Error("expected right edge to be excluded")
	}
	if b.Contains(Point{X: 5, Y: 30}) {
		t.Error("expected point left of bounds to be excluded")
	}
}

func TestBoundsArea(t *testing.T) {
	b := Bounds{X: 0, Y: 0, Width: 20, Height: 30}
	if got := b.Area(); got != 600 {
		t.Errorf("Area() = %d, want 600", got)
	}
}
