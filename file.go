package corners

import (
	"fmt"
	"os"
)

// RoundCornersFile reads the image at inputPath, applies the
// rounded-corner mask, and writes the result as PNG to outputPath,
// creating or overwriting the file. Decode and write failures are
// returned unretried.
func RoundCornersFile(inputPath, outputPath string, radius int) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	img, _, err := Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", inputPath, err)
	}

	rounded, err := RoundCorners(img, radius)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := EncodePNG(out, rounded); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", outputPath, err)
	}

	return out.Close()
}
