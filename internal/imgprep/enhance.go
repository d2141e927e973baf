// Package imgprep prepares raster images for OCR. The stages mirror a
// conventional scanned-document cleanup chain: deskew, shadow and noise
// removal, adaptive contrast enhancement and upscaling. Every stage is a
// total function over a grayscale raster.
package imgprep

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

const (
	claheClipLimit = 2.0
	claheTileGrid  = 8

	// DefaultScaleFactor is the upscale applied before OCR to raise the
	// effective resolution of embedded scans.
	DefaultScaleFactor = 2.0
)

// Enhance runs the full preparation chain in fixed order.
func Enhance(img *image.Gray, scaleFactor float64) *image.Gray {
	out := Deskew(img)
	out = RemoveShadows(out)
	out = EnhanceContrast(out)
	return Scale(out, scaleFactor)
}

// RemoveShadows isolates shadows and noise by subtracting a morphological
// opening from the image, then binarizes the residue (Otsu) and inverts it.
func RemoveShadows(img *image.Gray) *image.Gray {
	opened := dilate3x3(erode3x3(img))
	shadow := subtract(img, opened)
	bin := Binarize(shadow)
	return invert(bin)
}

// EnhanceContrast applies contrast-limited adaptive histogram equalization
// over a fixed tile grid.
func EnhanceContrast(img *image.Gray) *image.Gray {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return img
	}
	luts := claheLUTs(img)

	tw := float64(w) / claheTileGrid
	th := float64(h) / claheTileGrid
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		gy := (float64(y)+0.5)/th - 0.5
		j0, j1, wy := tileIndices(gy)
		for x := 0; x < w; x++ {
			gx := (float64(x)+0.5)/tw - 0.5
			i0, i1, wx := tileIndices(gx)

			v := img.GrayAt(x, y).Y
			top := float64(luts[j0][i0][v])*(1-wx) + float64(luts[j0][i1][v])*wx
			bot := float64(luts[j1][i0][v])*(1-wx) + float64(luts[j1][i1][v])*wx
			out.Pix[y*out.Stride+x] = uint8(math.Round(top*(1-wy) + bot*wy))
		}
	}
	return out
}

// Scale resizes by the given factor using bicubic (Catmull-Rom)
// interpolation.
func Scale(img *image.Gray, factor float64) *image.Gray {
	if factor == 1 {
		return img
	}
	w := int(float64(img.Rect.Dx()) * factor)
	h := int(float64(img.Rect.Dy()) * factor)
	if w < 1 || h < 1 {
		return img
	}
	out := image.NewGray(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// tileIndices maps a fractional grid coordinate to the two neighbouring tile
// indices and the interpolation weight of the second one.
func tileIndices(g float64) (int, int, float64) {
	i0 := int(math.Floor(g))
	frac := g - math.Floor(g)
	i1 := i0 + 1
	if i0 < 0 {
		return 0, 0, 0
	}
	if i1 > claheTileGrid-1 {
		return claheTileGrid - 1, claheTileGrid - 1, 0
	}
	return i0, i1, frac
}

// claheLUTs builds one clipped-equalization lookup table per tile.
func claheLUTs(img *image.Gray) [claheTileGrid][claheTileGrid][256]uint8 {
	var luts [claheTileGrid][claheTileGrid][256]uint8
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for ty := 0; ty < claheTileGrid; ty++ {
		y0 := ty * h / claheTileGrid
		y1 := (ty + 1) * h / claheTileGrid
		for tx := 0; tx < claheTileGrid; tx++ {
			x0 := tx * w / claheTileGrid
			x1 := (tx + 1) * w / claheTileGrid

			var hist [256]int
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					hist[img.GrayAt(x, y).Y]++
				}
			}
			n := (y1 - y0) * (x1 - x0)
			if n == 0 {
				continue
			}
			clipHistogram(&hist, n)

			cum := 0
			for v := 0; v < 256; v++ {
				cum += hist[v]
				luts[ty][tx][v] = uint8(math.Round(float64(cum) * 255 / float64(n)))
			}
		}
	}
	return luts
}

// clipHistogram caps each bin at the clip limit and redistributes the excess
// uniformly.
func clipHistogram(hist *[256]int, n int) {
	limit := int(claheClipLimit * float64(n) / 256)
	if limit < 1 {
		limit = 1
	}
	excess := 0
	for v := 0; v < 256; v++ {
		if hist[v] > limit {
			excess += hist[v] - limit
			hist[v] = limit
		}
	}
	share := excess / 256
	rem := excess % 256
	for v := 0; v < 256; v++ {
		hist[v] += share
		if v < rem {
			hist[v]++
		}
	}
}

func erode3x3(img *image.Gray) *image.Gray {
	return morph3x3(img, func(a, b uint8) bool { return a < b })
}

func dilate3x3(img *image.Gray) *image.Gray {
	return morph3x3(img, func(a, b uint8) bool { return a > b })
}

func morph3x3(img *image.Gray, pick func(a, b uint8) bool) *image.Gray {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := grayAt(img, x-1, y-1)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					v := grayAt(img, x+dx, y+dy)
					if pick(v, best) {
						best = v
					}
				}
			}
			out.SetGray(x, y, color.Gray{Y: best})
		}
	}
	return out
}

// subtract computes a-b with saturation at zero.
func subtract(a, b *image.Gray) *image.Gray {
	w, h := a.Rect.Dx(), a.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			va := int(a.GrayAt(x, y).Y)
			vb := int(b.GrayAt(x, y).Y)
			d := va - vb
			if d < 0 {
				d = 0
			}
			out.SetGray(x, y, color.Gray{Y: uint8(d)})
		}
	}
	return out
}

func invert(img *image.Gray) *image.Gray {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetGray(x, y, color.Gray{Y: 255 - img.GrayAt(x, y).Y})
		}
	}
	return out
}
