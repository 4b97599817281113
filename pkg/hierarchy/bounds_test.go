package hierarchy

import (
	"testing"

	"github.com/devicelab-dev/droidview/pkg/core"
)

func TestParseBounds(t *testing.T) {
	tests := []struct {
		input string
		want  core.Bounds
	}{
		{"[0,0][100,200]", core.Bounds{X: 0, Y: 0, Width: 100, Height: 200}},
		{"[50,100][150,300]", core.Bounds{X: 50, Y: 100, Width: 100, Height: 200}},
		{"[0,50][1080,150]", core.Bounds{X: 0, Y: 50, Width: 1080, Height: 100}},
		// Inverted rectangles keep their raw negative differences.
		{"[100,100][50,60]", core.Bounds{X: 100, Y: 100, Width: -50, Height: -40}},
		{"garbage", core.Bounds{}},
		{"", core.Bounds{}},
		{"[1,2]", core.Bounds{}},
		{"[1,2][3]", core.Bounds{}},
		{"[a,b][c,d]", core.Bounds{}},
	}

	for _, tt := range tests {
		got := ParseBounds(tt.input)
		if got != tt.want {
			t.Errorf("ParseBounds(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}
