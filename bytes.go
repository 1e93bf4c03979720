package corners

// RoundCornersBytes applies the rounded-corner mask to raw image bytes
// and returns the result encoded as PNG.
func RoundCornersBytes(data []byte, radius int) ([]byte, error) {
	img, _, err := DecodeImageBytes(data)
	if err != nil {
		return nil, err
	}

	rounded, err := RoundCorners(img, radius)
	if err != nil {
		return nil, err
	}

	return EncodePNGBytes(rounded)
}
