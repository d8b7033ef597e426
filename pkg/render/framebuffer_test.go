package render

import (
	"path/filepath"
	"testing"
)

func TestFramebufferDrawLine(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Clear(ColorBlack)

	fb.DrawLine(0, 0, 9, 9, ColorWhite)

	if got := fb.Count(ColorWhite); got != 10 {
		t.Errorf("diagonal line painted %d pixels, want 10", got)
	}
	for i := range 10 {
		if fb.GetPixel(i, i) != ColorWhite {
			t.Errorf("pixel (%d, %d) not on the line", i, i)
		}
	}
}

func TestFramebufferBounds(t *testing.T) {
	fb := NewFramebuffer(4, 4)

	fb.SetPixel(-1, 0, ColorRed)
	fb.SetPixel(4, 4, ColorRed)
	if fb.Count(ColorRed) != 0 {
		t.Error("out of range writes should be dropped")
	}
	if c := fb.GetPixel(10, 10); c.A != 0 {
		t.Errorf("out of range read = %v, want transparent", c)
	}
}

func TestFramebufferSavePNG(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.Clear(RGB(30, 30, 40))

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := fb.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img := fb.ToImage()
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("image size = %v", img.Bounds())
	}
}
