// Package jsfilter evaluates JavaScript predicates over flattened hierarchy
// elements, so agent callers can express ad-hoc filters the fixed selector
// fields cannot.
package jsfilter

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/devicelab-dev/droidview/pkg/hierarchy"
)

// Filter returns the elements for which the JavaScript expression evaluates
// truthy. The element under test is bound as `el` with its JSON field names,
// e.g. `el.clickable && el.text.length > 0`. A compile error or a runtime
// error in the expression fails the whole call; elements are never silently
// skipped.
func Filter(elements []hierarchy.FlatElement, expr string) ([]hierarchy.FlatElement, error) {
	program, err := goja.Compile("where", expr, true)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	vm := goja.New()
	vm.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	var out []hierarchy.FlatElement
	for _, el := range elements {
		if err := vm.Set("el", el); err != nil {
			return nil, fmt.Errorf("bind element: %w", err)
		}
		v, err := vm.RunProgram(program)
		if err != nil {
			return nil, fmt.Errorf("filter expression failed: %w", err)
		}
		if v.ToBoolean() {
			out = append(out, el)
		}
	}
	return out, nil
}
