package cmd

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/mcheemaa/axpilot/internal/ax"
	"github.com/mcheemaa/axpilot/internal/model"
	"github.com/mcheemaa/axpilot/internal/resolve"
)

type fakeShooter struct {
	data []byte
	err  error
}

func (f *fakeShooter) CaptureScreen() ([]byte, error) { return f.data, f.err }

func solidPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 10, G: 10, B: 10, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestAnnotateMatches_DrawsBoxes(t *testing.T) {
	shooter := &fakeShooter{data: solidPNG(t, 200, 100)}
	matches := []resolve.Match{
		{Node: &model.Node{
			Pos:  &ax.Point{X: 20, Y: 20},
			Size: &ax.Size{W: 60, H: 30},
		}, Score: 165},
		// No geometry: skipped without error.
		{Node: &model.Node{}, Score: 100},
	}

	out, err := annotateMatches(shooter, matches)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}

	// A corner pixel of the box outline differs from the background.
	r, g, b, _ := img.At(20, 20).RGBA()
	br, bg, bb, _ := img.At(0, 0).RGBA()
	if r == br && g == bg && b == bb {
		t.Error("expected the box outline to be drawn at (20,20)")
	}
}

func TestAnnotateMatches_CaptureError(t *testing.T) {
	shooter := &fakeShooter{err: errors.New("no permission")}
	if _, err := annotateMatches(shooter, nil); err == nil {
		t.Error("expected the capture error to propagate")
	}
}

func TestAnnotateMatches_BadImageData(t *testing.T) {
	shooter := &fakeShooter{data: []byte("not a png")}
	if _, err := annotateMatches(shooter, nil); err == nil {
		t.Error("expected a decode error")
	}
}
