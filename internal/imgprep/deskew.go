package imgprep

import (
	"image"
	"math"
	"sort"
)

type point struct {
	x, y float64
}

// Deskew estimates the rotation of the minimum-area rectangle bounding all
// foreground pixels and rotates the image to compensate. An image with no
// foreground pixels is returned unchanged.
func Deskew(img *image.Gray) *image.Gray {
	pts := foregroundPoints(img)
	if len(pts) == 0 {
		return img
	}
	angle := minAreaRectAngle(pts)
	// Normalize the raw estimate (in [-90, 0)) into (-45, 45].
	if angle < -45 {
		angle = -(90 + angle)
	} else {
		angle = -angle
	}
	return rotate(img, angle)
}

func foregroundPoints(img *image.Gray) []point {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	var pts []point
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.GrayAt(x, y).Y > 0 {
				pts = append(pts, point{float64(x), float64(y)})
			}
		}
	}
	return pts
}

// minAreaRectAngle returns the orientation of the minimum-area bounding
// rectangle in degrees, in [-90, 0).
func minAreaRectAngle(pts []point) float64 {
	hull := convexHull(pts)
	if len(hull) < 3 {
		return -90
	}
	best := math.MaxFloat64
	bestTheta := 0.0
	for i := range hull {
		j := (i + 1) % len(hull)
		dx := hull[j].x - hull[i].x
		dy := hull[j].y - hull[i].y
		theta := math.Atan2(dy, dx)
		cos, sin := math.Cos(theta), math.Sin(theta)

		minU, maxU := math.MaxFloat64, -math.MaxFloat64
		minV, maxV := math.MaxFloat64, -math.MaxFloat64
		for _, p := range hull {
			u := p.x*cos + p.y*sin
			v := -p.x*sin + p.y*cos
			minU, maxU = math.Min(minU, u), math.Max(maxU, u)
			minV, maxV = math.Min(minV, v), math.Max(maxV, v)
		}
		area := (maxU - minU) * (maxV - minV)
		if area < best {
			best = area
			bestTheta = theta
		}
	}
	deg := math.Mod(bestTheta*180/math.Pi, 90)
	if deg < 0 {
		deg += 90
	}
	return deg - 90
}

// convexHull computes the convex hull via Andrew's monotone chain,
// counterclockwise in image coordinates.
func convexHull(pts []point) []point {
	if len(pts) <= 2 {
		return pts
	}
	sorted := make([]point, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].x != sorted[j].x {
			return sorted[i].x < sorted[j].x
		}
		return sorted[i].y < sorted[j].y
	})

	cross := func(o, a, b point) float64 {
		return (a.x-o.x)*(b.y-o.y) - (a.y-o.y)*(b.x-o.x)
	}

	var lower []point
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper []point
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// rotate rotates the image by the given angle (degrees, positive is
// counterclockwise) around its center with bilinear sampling and replicated
// borders.
func rotate(img *image.Gray, angleDeg float64) *image.Gray {
	if angleDeg == 0 {
		return img
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	cx, cy := float64(w)/2, float64(h)/2
	rad := angleDeg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			// Inverse mapping back into the source raster.
			sx := cos*dx - sin*dy + cx
			sy := sin*dx + cos*dy + cy
			out.Pix[y*out.Stride+x] = bilinear(img, sx, sy)
		}
	}
	return out
}

func bilinear(img *image.Gray, x, y float64) uint8 {
	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - float64(x0)
	fy := y - float64(y0)

	v00 := float64(grayAt(img, x0, y0))
	v10 := float64(grayAt(img, x0+1, y0))
	v01 := float64(grayAt(img, x0, y0+1))
	v11 := float64(grayAt(img, x0+1, y0+1))

	top := v00*(1-fx) + v10*fx
	bot := v01*(1-fx) + v11*fx
	return uint8(math.Round(top*(1-fy) + bot*fy))
}
