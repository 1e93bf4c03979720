package corners

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
)

// RoundedMask builds the alpha mask for a rounded rectangle covering the
// full width x height bounds: 255 inside the shape, 0 outside, with the
// rasterizer's anti-aliasing along the corner arcs. A radius of 0 yields a
// fully opaque mask. Radii larger than half the shorter dimension are
// clamped, collapsing the shape to a capsule.
func RoundedMask(width, height, radius int) (*image.Alpha, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid mask dimensions %dx%d", width, height)
	}
	if radius < 0 {
		return nil, fmt.Errorf("negative corner radius %d", radius)
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))

	if radius == 0 {
		for i := range mask.Pix {
			mask.Pix[i] = 0xff
		}
		return mask, nil
	}

	if half := min(width, height) / 2; radius > half {
		radius = half
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(0, 0, float64(width), float64(height), float64(radius))
	dc.Fill()

	// The context starts fully transparent, so the alpha channel of the
	// rendered rounded rectangle is exactly the coverage we want.
	rendered, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("unexpected raster image type %T", dc.Image())
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			mask.Pix[y*mask.Stride+x] = rendered.Pix[y*rendered.Stride+x*4+3]
		}
	}

	return mask, nil
}
