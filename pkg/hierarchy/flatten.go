package hierarchy

// DefaultFlattenDepth is the default depth limit for Flatten.
const DefaultFlattenDepth = 20

// Flatten linearizes the forest into pre-order records annotated with their
// depth (roots at 0). Nodes deeper than maxDepth are omitted with their
// subtrees. A consumer can recover an element's parent as the nearest
// preceding record whose depth is one less than its own.
func Flatten(forest []*Element, maxDepth int) []FlatElement {
	var out []FlatElement

	var walk func(el *Element, depth int)
	walk = func(el *Element, depth int) {
		if depth > maxDepth {
			return
		}
		out = append(out, FlatElement{
			ResourceID:  el.ResourceID,
			Text:        el.Text,
			ContentDesc: el.ContentDesc,
			Class:       el.Class,
			Package:     el.Package,
			Bounds:      el.Bounds,
			Clickable:   el.Clickable,
			Enabled:     el.Enabled,
			Scrollable:  el.Scrollable,
			Depth:       depth,
			Children:    []*Element{},
		})
		for _, child := range el.Children {
			walk(child, depth+1)
		}
	}

	for _, root := range forest {
		walk(root, 0)
	}
	return out
}
