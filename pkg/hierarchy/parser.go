package hierarchy

import (
	"strings"
)

// Parse converts a uiautomator dump body into a forest of elements.
//
// The dump grammar is flat: every structural tag is a <node>, either
// self-closing or paired with a closing tag, and attribute values never
// contain an unescaped '>'. That allows a single left-to-right scan with an
// explicit stack of currently open nodes instead of a full XML decoder.
// A dump normally has exactly one <hierarchy> root but the parser does not
// assume that; multiple top-level nodes are returned in document order.
//
// Malformed structure is handled fail-soft: a stray closing tag with no open
// node is ignored, and a node whose closing tag never arrives simply keeps
// the children parsed after it. Parse never fails.
func Parse(s string) []*Element {
	var roots []*Element
	var stack []*Element

	i := 0
	for {
		lt := strings.IndexByte(s[i:], '<')
		if lt < 0 {
			break
		}
		i += lt
		gt := strings.IndexByte(s[i:], '>')
		if gt < 0 {
			break
		}
		tag := s[i+1 : i+gt]
		i += gt + 1

		switch {
		case strings.HasPrefix(tag, "/"):
			// Closing tag. With well-formed input an unmatched closer only
			// occurs for the outer </hierarchy>, when the stack is already
			// empty; popping an empty stack is a no-op either way.
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case isNodeTag(tag):
			selfClosing := strings.HasSuffix(tag, "/")
			el := parseNode(strings.TrimSuffix(tag[len("node"):], "/"))

			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, el)
			} else {
				roots = append(roots, el)
			}
			if !selfClosing {
				stack = append(stack, el)
			}
		}
		// Anything else (<?xml ...?>, <hierarchy ...>) carries no node data.
	}

	return roots
}

// isNodeTag reports whether the tag body (text between '<' and '>') opens a
// node element.
func isNodeTag(tag string) bool {
	if !strings.HasPrefix(tag, "node") {
		return false
	}
	if len(tag) == len("node") {
		return true
	}
	switch tag[len("node")] {
	case ' ', '\t', '\n', '\r', '/':
		return true
	}
	return false
}

// parseNode builds an element from the raw attribute substring of a node tag.
func parseNode(attrs string) *Element {
	return &Element{
		ResourceID:  attrValue(attrs, "resource-id"),
		Text:        attrValue(attrs, "text"),
		ContentDesc: attrValue(attrs, "content-desc"),
		Class:       attrValue(attrs, "class"),
		Package:     attrValue(attrs, "package"),
		Bounds:      ParseBounds(attrValue(attrs, "bounds")),
		Clickable:   attrValue(attrs, "clickable") == "true",
		Enabled:     attrValue(attrs, "enabled") == "true",
		Scrollable:  attrValue(attrs, "scrollable") == "true",
	}
}

// attrValue returns the verbatim text between the first pair of double
// quotes following `name="`, or "" when the attribute is absent. Escaped
// quotes inside the value are not unescaped.
func attrValue(attrs, name string) string {
	marker := name + `="`
	idx := 0
	for {
		j := strings.Index(attrs[idx:], marker)
		if j < 0 {
			return ""
		}
		j += idx

		// Require whitespace before the name so "desc" can never match
		// inside "content-desc".
		if j > 0 {
			switch attrs[j-1] {
			case ' ', '\t', '\n', '\r':
			default:
				idx = j + len(marker)
				continue
			}
		}

		start := j + len(marker)
		end := strings.IndexByte(attrs[start:], '"')
		if end < 0 {
			return ""
		}
		return attrs[start : start+end]
	}
}
