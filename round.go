package corners

import (
	"fmt"
	"image"
	"image/draw"
)

// RoundCorners returns a copy of img whose alpha channel has been
// attenuated by a rounded-rectangle mask congruent to the image bounds.
// Output dimensions equal input dimensions and color channels are left
// untouched. Sources without an alpha channel are treated as fully
// opaque, so their output alpha equals the mask itself.
func RoundCorners(img image.Image, radius int) (*image.NRGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image provided")
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}

	mask, err := RoundedMask(width, height, radius)
	if err != nil {
		return nil, err
	}

	out := cloneToNRGBA(img)
	applyMask(out, mask)

	return out, nil
}

// cloneToNRGBA copies the image into a mutable non-premultiplied buffer
// anchored at the origin. Non-premultiplied storage keeps the color
// channels independent of the alpha rewrite.
func cloneToNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), src, bounds.Min, draw.Src)
	return dst
}

// applyMask multiplies the image's alpha channel by the mask in place,
// rescaled so 255*255 maps back to 255. The product can only shrink
// opacity, never add it.
func applyMask(img *image.NRGBA, mask *image.Alpha) {
	bounds := img.Bounds()

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			offset := img.PixOffset(x, y) + 3
			a := uint32(img.Pix[offset])
			m := uint32(mask.Pix[mask.PixOffset(x, y)])
			img.Pix[offset] = uint8((a*m + 127) / 255)
		}
	}
}
