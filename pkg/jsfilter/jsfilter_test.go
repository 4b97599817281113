package jsfilter

import (
	"testing"

	"github.com/devicelab-dev/droidview/pkg/hierarchy"
)

func sampleElements() []hierarchy.FlatElement {
	forest := hierarchy.Parse(`<hierarchy>
		<node class="android.widget.FrameLayout" bounds="[0,0][1080,1920]">
			<node class="android.widget.Button" text="OK" resource-id="com.app:id/ok" bounds="[100,200][300,280]" clickable="true" enabled="true"/>
			<node class="android.widget.TextView" text="Label" bounds="[0,400][1080,500]"/>
		</node>
	</hierarchy>`)
	return hierarchy.Flatten(forest, hierarchy.DefaultFlattenDepth)
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want int
	}{
		{"clickable", "el.clickable", 1},
		{"non-empty text", "el.text.length > 0", 2},
		{"by depth", "el.depth === 1", 2},
		{"by bounds", "el.bounds.width > 500", 2},
		{"combined", `el.clickable && el.text === "OK"`, 1},
		{"none", "el.scrollable", 0},
	}

	elements := sampleElements()
	for _, tt := range tests {
		got, err := Filter(elements, tt.expr)
		if err != nil {
			t.Fatalf("%s: Filter failed: %v", tt.name, err)
		}
		if len(got) != tt.want {
			t.Errorf("%s: Filter(%q) matched %d, want %d", tt.name, tt.expr, len(got), tt.want)
		}
	}
}

func TestFilterInvalidExpression(t *testing.T) {
	if _, err := Filter(sampleElements(), "el.clickable &&"); err == nil {
		t.Error("expected compile error for malformed expression")
	}
}

func TestFilterRuntimeError(t *testing.T) {
	if _, err := Filter(sampleElements(), "el.missing.deeply.nested"); err == nil {
		t.Error("expected runtime error surfaced, not skipped")
	}
}
