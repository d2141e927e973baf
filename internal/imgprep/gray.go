package imgprep

import (
	"image"
	"image/color"
)

// ToGray converts any decoded image to a single-channel grayscale raster.
func ToGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.SetGray(x-b.Min.X, y-b.Min.Y, color.GrayModel.Convert(img.At(x, y)).(color.Gray))
		}
	}
	return out
}

// grayAt samples with replicated borders: coordinates outside the raster
// clamp to the nearest edge pixel.
func grayAt(img *image.Gray, x, y int) uint8 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if x < 0 {
		x = 0
	} else if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	} else if y >= h {
		y = h - 1
	}
	return img.GrayAt(x, y).Y
}

func histogram(img *image.Gray) [256]int {
	var hist [256]int
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hist[img.GrayAt(x, y).Y]++
		}
	}
	return hist
}

// otsuLevel computes the Otsu threshold from a histogram by maximizing
// between-class variance.
func otsuLevel(hist [256]int) int {
	total := 0
	for _, c := range hist {
		total += c
	}
	if total == 0 {
		return 0
	}
	var sum float64
	for i, c := range hist {
		sum += float64(i) * float64(c)
	}
	var sumB, wB float64
	var maxVar float64
	level := 0
	for t := 0; t < 256; t++ {
		wB += float64(hist[t])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(t) * float64(hist[t])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		v := wB * wF * (mB - mF) * (mB - mF)
		if v > maxVar {
			maxVar = v
			level = t
		}
	}
	return level
}

// Binarize applies Otsu thresholding: pixels above the computed level become
// white, the rest black.
func Binarize(img *image.Gray) *image.Gray {
	level := otsuLevel(histogram(img))
	w, h := img.Rect.Dx(), img.Rect.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if int(img.GrayAt(x, y).Y) > level {
				out.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return out
}
