package hierarchy

import (
	"fmt"
	"strings"
)

// DefaultCompactDepth is the default depth limit for RenderCompact.
const DefaultCompactDepth = 15

// wellKnownClassPrefixes are stripped from class names in compact output.
var wellKnownClassPrefixes = []string{
	"android.widget.",
	"android.view.",
	"android.webkit.",
}

// shortClass shortens a fully qualified widget class for display.
// Platform widget/view/webkit prefixes are stripped, androidx library
// classes are reduced to their final dotted segment, anything else is left
// unmodified.
func shortClass(class string) string {
	for _, prefix := range wellKnownClassPrefixes {
		if strings.HasPrefix(class, prefix) {
			return class[len(prefix):]
		}
	}
	if strings.HasPrefix(class, "androidx.") {
		if i := strings.LastIndexByte(class, '.'); i >= 0 {
			return class[i+1:]
		}
	}
	return class
}

// RenderCompact produces a dense line-per-node text projection of the forest
// for human or LLM consumption. Nodes deeper than maxDepth are omitted along
// with their subtrees. The output is lossy and not meant to parse back into
// a forest. Rendering is a pure function of the forest: two calls yield
// byte-identical output.
func RenderCompact(forest []*Element, maxDepth int) string {
	var sb strings.Builder
	for _, root := range forest {
		renderElement(&sb, root, 0, maxDepth)
	}
	return sb.String()
}

func renderElement(sb *strings.Builder, el *Element, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}

	fields := make([]string, 0, 7)
	if class := shortClass(el.Class); class != "" {
		fields = append(fields, class)
	}
	if el.Text != "" {
		fields = append(fields, fmt.Sprintf("%q", el.Text))
	}
	fields = append(fields, fmt.Sprintf("[%d,%d %dx%d]",
		el.Bounds.X, el.Bounds.Y, el.Bounds.Width, el.Bounds.Height))
	if id := ShortID(el.ResourceID); id != "" {
		fields = append(fields, "id:"+id)
	}
	if el.ContentDesc != "" {
		fields = append(fields, fmt.Sprintf("desc:%q", el.ContentDesc))
	}
	if el.Clickable {
		fields = append(fields, "[clickable]")
	}
	if el.Scrollable {
		fields = append(fields, "[scrollable]")
	}

	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(strings.Join(fields, " "))
	sb.WriteByte('\n')

	for _, child := range el.Children {
		renderElement(sb, child, depth+1, maxDepth)
	}
}
