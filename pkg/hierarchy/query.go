package hierarchy

// Selector is a partial-match filter over element attributes. Empty fields
// impose no constraint; an all-empty selector matches every element.
type Selector struct {
	ResourceID  string `json:"resourceId,omitempty" yaml:"resourceId,omitempty"`
	Text        string `json:"text,omitempty" yaml:"text,omitempty"`
	ContentDesc string `json:"contentDesc,omitempty" yaml:"contentDesc,omitempty"`
}

// Matches reports whether the element satisfies every set selector field.
// ResourceID matches the raw id verbatim or its last-'/'-segment short form,
// so "login" finds a node whose id is "com.app:id/login". Text and
// ContentDesc require exact equality, with no trimming or case-folding.
func (s Selector) Matches(el *Element) bool {
	return s.MatchesFields(el.ResourceID, el.Text, el.ContentDesc)
}

// MatchesFlat applies the same predicates to a flattened record.
func (s Selector) MatchesFlat(el FlatElement) bool {
	return s.MatchesFields(el.ResourceID, el.Text, el.ContentDesc)
}

// MatchesFields applies the selector predicates to raw attribute values.
func (s Selector) MatchesFields(resourceID, text, contentDesc string) bool {
	if s.ResourceID != "" && resourceID != s.ResourceID && ShortID(resourceID) != s.ResourceID {
		return false
	}
	if s.Text != "" && text != s.Text {
		return false
	}
	if s.ContentDesc != "" && contentDesc != s.ContentDesc {
		return false
	}
	return true
}

// IsZero reports whether no selector field is set.
func (s Selector) IsZero() bool {
	return s.ResourceID == "" && s.Text == "" && s.ContentDesc == ""
}

// Find returns all elements matching the selector, in pre-order traversal
// order over the whole forest. Descendants of a matching element are still
// visited, so nested matches are all reported. An empty result is valid.
func Find(forest []*Element, sel Selector) []*Element {
	var matches []*Element

	var walk func(el *Element)
	walk = func(el *Element) {
		if sel.Matches(el) {
			matches = append(matches, el)
		}
		for _, child := range el.Children {
			walk(child)
		}
	}

	for _, root := range forest {
		walk(root)
	}
	return matches
}
