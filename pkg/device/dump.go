package device

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/devicelab-dev/droidview/pkg/core"
	"github.com/devicelab-dev/droidview/pkg/hierarchy"
	"github.com/devicelab-dev/droidview/pkg/logger"
)

// dumpTrailerPattern matches the confirmation line uiautomator appends after
// the XML body. Older device builds misspell it "hierchary", so both forms
// are accepted.
var dumpTrailerPattern = regexp.MustCompile(`(?i)UI hier(?:archy|chary) dumped to:.*$`)

// excerptLen bounds the diagnostic excerpt carried by envelope errors.
const excerptLen = 200

// DumpHierarchy captures the current accessibility tree. It runs
// `uiautomator dump /dev/tty` on the device, strips the trailer line,
// validates that the output carries a <hierarchy> document, and parses it
// into a forest. Every call re-dumps and re-parses; a forest is never reused
// across calls.
func (d *AndroidDevice) DumpHierarchy(ctx context.Context) ([]*hierarchy.Element, error) {
	ctx, cancel := context.WithTimeout(ctx, d.dumpTimeout)
	defer cancel()

	out, err := d.adb(ctx, "exec-out", "uiautomator", "dump", "/dev/tty")
	if err != nil {
		return nil, fmt.Errorf("dump hierarchy: %w", err)
	}

	cleaned := CleanDumpOutput(out)
	if !strings.Contains(cleaned, "<hierarchy") {
		excerpt := cleaned
		if len(excerpt) > excerptLen {
			excerpt = excerpt[:excerptLen]
		}
		return nil, core.ErrUnexpectedOutput.WithMessage(
			fmt.Sprintf("unexpected uiautomator output: %q", excerpt))
	}

	forest := hierarchy.Parse(cleaned)
	logger.Debug("dumped hierarchy from %s: %d root(s)", d.serial, len(forest))
	return forest, nil
}

// CleanDumpOutput strips the uiautomator trailer line and surrounding
// whitespace from raw dump output.
func CleanDumpOutput(out string) string {
	cleaned := strings.TrimSpace(out)
	cleaned = dumpTrailerPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
