package annotate

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/devicelab-dev/droidview/pkg/hierarchy"
)

func blankPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestScreenshot(t *testing.T) {
	data := blankPNG(t, 200, 200)
	forest := hierarchy.Parse(`<hierarchy><node class="android.widget.Button" text="OK" bounds="[50,50][150,100]" clickable="true"/></hierarchy>`)
	elements := hierarchy.Flatten(forest, hierarchy.DefaultFlattenDepth)

	out, err := Screenshot(data, elements)
	if err != nil {
		t.Fatalf("Screenshot failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Errorf("output dimensions = %v", img.Bounds())
	}

	// The box outline should have painted the element's top-left corner red.
	r, g, b, _ := img.At(50, 50).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected red outline at (50,50), got rgba(%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestScreenshotSkipsZeroAreaElements(t *testing.T) {
	data := blankPNG(t, 50, 50)
	forest := hierarchy.Parse(`<hierarchy><node class="android.view.View" bounds="[10,10][10,10]"/></hierarchy>`)
	elements := hierarchy.Flatten(forest, hierarchy.DefaultFlattenDepth)

	out, err := Screenshot(data, elements)
	if err != nil {
		t.Fatalf("Screenshot failed: %v", err)
	}

	// The blank image decodes as transparent black; any color at the
	// degenerate element's origin means it was drawn.
	img, _ := png.Decode(bytes.NewReader(out))
	r, g, b, _ := img.At(10, 10).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("zero-area element should not be drawn, got rgb(%d,%d,%d)", r, g, b)
	}
}

func TestScreenshotInvalidPNG(t *testing.T) {
	if _, err := Screenshot([]byte("not a png"), nil); err == nil {
		t.Error("expected error for invalid PNG data")
	}
}
