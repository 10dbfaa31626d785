package postprocess

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Flatten composites src over an opaque background. References decoded from
// JPEG and renders with transparent backgrounds compare equal once both
// are flattened onto the same colour.
func Flatten(src image.Image, bg color.NRGBA) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff}}, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}

// ContentBounds returns the smallest rectangle holding every pixel whose
// colour differs from bg by more than tolerance on some channel. It is empty
// when the image is all background.
func ContentBounds(img *image.NRGBA, bg color.NRGBA, tolerance uint8) image.Rectangle {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	minX, minY := w, h
	maxX, maxY := -1, -1
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*img.Stride + x*4
			if channelDelta(img.Pix[i:i+4], bg) <= tolerance {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// CropAndCenter crops img to its content, scales the content to fill
// fillRatio of a w×h canvas keeping its aspect, and centres it on bg.
// An image with no content comes back as a plain canvas.
func CropAndCenter(img *image.NRGBA, bg color.NRGBA, w, h int, fillRatio float64) *image.NRGBA {
	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	content := ContentBounds(img, bg, 0)
	if content.Empty() {
		return canvas
	}
	srcW, srcH := content.Dx(), content.Dy()
	k := math.Min(float64(w)*fillRatio/float64(srcW), float64(h)*fillRatio/float64(srcH))
	newW := max(int(float64(srcW)*k+0.5), 1)
	newH := max(int(float64(srcH)*k+0.5), 1)

	offX := (w - newW) / 2
	offY := (h - newH) / 2
	dst := image.Rect(offX, offY, offX+newW, offY+newH)
	draw.CatmullRom.Scale(canvas, dst, img, content.Add(img.Bounds().Min), draw.Src, nil)
	return canvas
}

// FlipHorizontal mirrors an image left-to-right.
func FlipHorizontal(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		srcOff := y * img.Stride
		dstOff := y * out.Stride
		for x := 0; x < w; x++ {
			si := srcOff + (w-1-x)*4
			di := dstOff + x*4
			copy(out.Pix[di:di+4], img.Pix[si:si+4])
		}
	}
	return out
}

func channelDelta(px []uint8, c color.NRGBA) uint8 {
	d := absDiff(px[0], c.R)
	d = max(d, absDiff(px[1], c.G))
	d = max(d, absDiff(px[2], c.B))
	return max(d, absDiff(px[3], c.A))
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
