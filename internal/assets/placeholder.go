package assets

import (
	"image"
	"image/color"
	"math"
)

// Placeholder draws a simple water droplet for use when no assets are
// available.
func Placeholder(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	top := color.RGBA{R: 54, G: 178, B: 255, A: 255}
	bottom := color.RGBA{R: 28, G: 120, B: 240, A: 255}
	edge := color.RGBA{R: 20, G: 70, B: 160, A: 255}

	cx := 0.5
	topY, bottomY := 0.08, 0.92

	for y := 0; y < size; y++ {
		fy := float64(y) / float64(size)
		if fy < topY || fy > bottomY {
			continue
		}
		t := (fy - topY) / (bottomY - topY)
		halfWidth := 0.42 * math.Pow(math.Sin(math.Min(1, t*1.15)*math.Pi/2), 0.8)
		if t > 0.75 {
			halfWidth *= 1 - (t-0.75)*1.0
		}
		for x := 0; x < size; x++ {
			fx := float64(x) / float64(size)
			d := math.Abs(fx - cx)
			if d > halfWidth {
				continue
			}
			c := lerpColor(top, bottom, fy)
			if d > halfWidth-0.03 {
				c = edge
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + (float64(b.R)-float64(a.R))*t),
		G: uint8(float64(a.G) + (float64(b.G)-float64(a.G))*t),
		B: uint8(float64(a.B) + (float64(b.B)-float64(a.B))*t),
		A: 255,
	}
}
