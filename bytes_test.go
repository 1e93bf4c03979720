package corners

import (
	"image"
	"image/color"
	"testing"
)

func TestRoundCornersBytesRoundTrip(t *testing.T) {
	src, err := EncodePNGBytes(newOpaqueImage(64, 64, color.NRGBA{R: 200, G: 30, B: 30, A: 255}))
	if err != nil {
		t.Fatalf("encode source: %v", err)
	}

	out, err := RoundCornersBytes(src, 16)
	if err != nil {
		t.Fatalf("RoundCornersBytes error: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("RoundCornersBytes returned empty output")
	}

	decoded, format, err := DecodeImageBytes(out)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if format != "png" {
		t.Fatalf("output format = %q, want png", format)
	}

	got := imageToNRGBA(decoded)
	if !got.Bounds().Eq(image.Rect(0, 0, 64, 64)) {
		t.Fatalf("output bounds = %v, want 64x64", got.Bounds())
	}
	if a := alphaAt(got, 0, 0); a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := alphaAt(got, 32, 32); a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}

	offset := got.PixOffset(32, 32)
	if got.Pix[offset] != 200 || got.Pix[offset+1] != 30 || got.Pix[offset+2] != 30 {
		t.Errorf("center color = (%d,%d,%d), want (200,30,30)",
			got.Pix[offset], got.Pix[offset+1], got.Pix[offset+2])
	}
}

func TestRoundCornersBytesRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not an image", data: []byte("definitely not an image")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := RoundCornersBytes(tc.data, 10); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}
