package hierarchy

import (
	"regexp"
	"strconv"

	"github.com/devicelab-dev/droidview/pkg/core"
)

// boundsPattern matches the uiautomator bounds notation "[left,top][right,bottom]".
var boundsPattern = regexp.MustCompile(`\[(\d+),(\d+)\]\[(\d+),(\d+)\]`)

// ParseBounds parses the bracketed rectangle notation into Bounds.
// A malformed or absent bounds string yields the zero rectangle rather than
// an error, so a single bad attribute never aborts a dump parse. Width and
// height are raw differences and may be negative for inverted rectangles.
func ParseBounds(s string) core.Bounds {
	m := boundsPattern.FindStringSubmatch(s)
	if m == nil {
		return core.Bounds{}
	}

	left, _ := strconv.Atoi(m[1])
	top, _ := strconv.Atoi(m[2])
	right, _ := strconv.Atoi(m[3])
	bottom, _ := strconv.Atoi(m[4])

	return core.Bounds{
		X:      left,
		Y:      top,
		Width:  right - left,
		Height: bottom - top,
	}
}
