package imgprep

import (
	"image"
	"image/color"
	"testing"
)

func grayImage(w, h int, fill uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = fill
	}
	return img
}

func TestToGrayNormalizesBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(3, 5, 13, 15))
	for y := 5; y < 15; y++ {
		for x := 3; x < 13; x++ {
			src.Set(x, y, color.RGBA{R: 128, G: 128, B: 128, A: 255})
		}
	}
	g := ToGray(src)
	if g.Rect.Min.X != 0 || g.Rect.Min.Y != 0 || g.Rect.Dx() != 10 || g.Rect.Dy() != 10 {
		t.Fatalf("unexpected bounds %v", g.Rect)
	}
}

func TestBinarizeBimodal(t *testing.T) {
	img := grayImage(10, 10, 50)
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			img.SetGray(x, y, color.Gray{Y: 200})
		}
	}
	out := Binarize(img)
	if got := out.GrayAt(0, 0).Y; got != 0 {
		t.Errorf("dark pixel = %d, want 0", got)
	}
	if got := out.GrayAt(9, 9).Y; got != 255 {
		t.Errorf("bright pixel = %d, want 255", got)
	}
}

func TestOtsuLevelSeparatesModes(t *testing.T) {
	var hist [256]int
	hist[50] = 100
	hist[200] = 100
	level := otsuLevel(hist)
	if level < 50 || level >= 200 {
		t.Errorf("level = %d, want within (50, 200)", level)
	}
}

func TestDeskewNoForeground(t *testing.T) {
	img := grayImage(20, 20, 0)
	if out := Deskew(img); out != img {
		t.Error("expected all-black image to be returned unchanged")
	}
}

func TestDeskewAxisAlignedContent(t *testing.T) {
	// An axis-aligned block needs no rotation, so the input is passed through.
	img := grayImage(40, 40, 0)
	for y := 10; y < 30; y++ {
		for x := 5; x < 35; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	if out := Deskew(img); out != img {
		t.Error("expected axis-aligned content to skip rotation")
	}
}

func TestScaleDoublesDimensions(t *testing.T) {
	img := grayImage(8, 6, 128)
	out := Scale(img, 2.0)
	if out.Rect.Dx() != 16 || out.Rect.Dy() != 12 {
		t.Fatalf("scaled bounds = %v", out.Rect)
	}
}

func TestEnhancePreservesScaledSize(t *testing.T) {
	img := grayImage(32, 32, 128)
	for y := 8; y < 24; y++ {
		for x := 8; x < 24; x++ {
			img.SetGray(x, y, color.Gray{Y: 30})
		}
	}
	out := Enhance(img, 2.0)
	if out.Rect.Dx() != 64 || out.Rect.Dy() != 64 {
		t.Fatalf("enhanced bounds = %v", out.Rect)
	}
}

func TestRemoveShadowsProducesBinaryOutput(t *testing.T) {
	img := grayImage(16, 16, 220)
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			img.SetGray(x, y, color.Gray{Y: 40})
		}
	}
	out := RemoveShadows(img)
	for i, p := range out.Pix {
		if p != 0 && p != 255 {
			t.Fatalf("pixel %d = %d, want 0 or 255", i, p)
		}
	}
}
