package device

import (
	"context"
	"fmt"
	"strconv"

	"github.com/devicelab-dev/droidview/pkg/core"
	"github.com/devicelab-dev/droidview/pkg/hierarchy"
	"github.com/devicelab-dev/droidview/pkg/logger"
)

// Tap injects a tap at the given screen coordinate.
func (d *AndroidDevice) Tap(ctx context.Context, p core.Point) error {
	_, err := d.adb(ctx, "shell", "input", "tap", strconv.Itoa(p.X), strconv.Itoa(p.Y))
	if err != nil {
		return fmt.Errorf("tap at (%d,%d): %w", p.X, p.Y, err)
	}
	return nil
}

// TapElement dumps the hierarchy, finds the first element matching the
// selector, and taps its center. The matched element is returned so callers
// can report what was hit.
func (d *AndroidDevice) TapElement(ctx context.Context, sel hierarchy.Selector) (*hierarchy.Element, error) {
	forest, err := d.DumpHierarchy(ctx)
	if err != nil {
		return nil, err
	}

	matches := hierarchy.Find(forest, sel)
	if len(matches) == 0 {
		return nil, core.ErrElementNotFound
	}

	el := matches[0]
	center := el.Bounds.Center()
	logger.Debug("tapping %q at (%d,%d)", hierarchy.ShortID(el.ResourceID), center.X, center.Y)
	if err := d.Tap(ctx, center); err != nil {
		return nil, err
	}
	return el, nil
}

// Screenshot captures the current screen as PNG bytes.
func (d *AndroidDevice) Screenshot(ctx context.Context) ([]byte, error) {
	data, err := d.exec.RunRaw(ctx, d.adbPath, d.adbArgs("exec-out", "screencap", "-p")...)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	return data, nil
}
