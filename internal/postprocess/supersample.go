package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales a premultiplied supersampled render down to w×h with
// CatmullRom filtering and returns it unpremultiplied. Scaling the
// premultiplied values keeps transparent edges from darkening.
func Downsample(img *image.RGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	dst := img
	if b.Dx() != w || b.Dy() != h {
		dst = image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	// Unpremultiply alpha
	result := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			si := dst.PixOffset(dst.Rect.Min.X+x, dst.Rect.Min.Y+y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}

	return result
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
