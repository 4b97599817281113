// Package hierarchy parses Android uiautomator dumps into element trees and
// provides search and rendering over them.
package hierarchy

import (
	"strings"

	"github.com/devicelab-dev/droidview/pkg/core"
)

// Element represents one node of the accessibility hierarchy.
// String attributes default to "" when absent from the dump; a parent
// exclusively owns its children and no parent back-pointer is stored.
type Element struct {
	ResourceID  string      `json:"resourceId"`
	Text        string      `json:"text"`
	ContentDesc string      `json:"contentDesc"`
	Class       string      `json:"class"`
	Package     string      `json:"package"`
	Bounds      core.Bounds `json:"bounds"`
	Clickable   bool        `json:"clickable"`
	Enabled     bool        `json:"enabled"`
	Scrollable  bool        `json:"scrollable"`
	Children    []*Element  `json:"children,omitempty"`
}

// FlatElement is one record of a depth-annotated pre-order linearization.
// Nesting is encoded solely by Depth and emission order; Children is always
// empty so the record serializes with the same shape as Element.
type FlatElement struct {
	ResourceID  string      `json:"resourceId"`
	Text        string      `json:"text"`
	ContentDesc string      `json:"contentDesc"`
	Class       string      `json:"class"`
	Package     string      `json:"package"`
	Bounds      core.Bounds `json:"bounds"`
	Clickable   bool        `json:"clickable"`
	Enabled     bool        `json:"enabled"`
	Scrollable  bool        `json:"scrollable"`
	Depth       int         `json:"depth"`
	Children    []*Element  `json:"children"`
}

// ShortID returns the segment after the last '/' of a resource id, so
// "com.app:id/login" shortens to "login". Ids without a '/' are returned
// unchanged.
func ShortID(id string) string {
	if i := strings.LastIndexByte(id, '/'); i >= 0 {
		return id[i+1:]
	}
	return id
}
