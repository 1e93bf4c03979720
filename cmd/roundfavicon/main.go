package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	corners "github.com/pngtools/rounded-corners-go"
)

// go run main.go                                  (regenerate the favicons)
// go run main.go -in logo.png -out favicon.png
// go run main.go -in logo.webp -radius 32
// go run main.go -in logo.png -outbase64

const (
	defaultRadius = 50
	defaultSource = "logo_no_background_light.png"
)

func main() {
	input := flag.String("in", "", "Path to the source image (png/jpg/webp)")
	inputBase64 := flag.String("inbase64", "", "Base64 image input (optionally a data URL)")
	output := flag.String("out", "", "Output path (defaults to <name>_rounded.png)")
	outputBase64 := flag.Bool("outbase64", false, "Write the rounded PNG as base64 to stdout instead of a file")
	radius := flag.Int("radius", defaultRadius, "Corner radius in pixels")
	flag.Parse()

	if *input == "" && *inputBase64 == "" {
		refreshFavicons()
		return
	}

	var (
		img    image.Image
		format string
		source string
		err    error
	)

	if *inputBase64 != "" {
		img, format, err = corners.DecodeBase64Image(*inputBase64)
		source = "base64"
	} else {
		inFile, openErr := os.Open(*input)
		if openErr != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", openErr)
			os.Exit(1)
		}
		defer inFile.Close()

		img, format, err = corners.Decode(inFile)
		source = *input
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "decode input: %v\n", err)
		os.Exit(1)
	}

	rounded, err := corners.RoundCorners(img, *radius)
	if err != nil {
		fmt.Fprintf(os.Stderr, "round corners: %v\n", err)
		os.Exit(1)
	}

	if *outputBase64 {
		encoded, encErr := corners.EncodePNGToBase64(rounded)
		if encErr != nil {
			fmt.Fprintf(os.Stderr, "encode base64 output: %v\n", encErr)
			os.Exit(1)
		}
		fmt.Println(encoded)
		fmt.Printf("Processed %s (%s) -> base64 [radius %d]\n", source, format, *radius)
		return
	}

	outPath := *output
	if outPath == "" {
		base := "output"
		if *input != "" {
			base = strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
		}
		outPath = filepath.Join(filepath.Dir(*input), base+"_rounded.png")
	}

	outFile, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	if err := corners.EncodePNG(outFile, rounded); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved rounded corner image to %s\n", outPath)
}

// refreshFavicons regenerates both project favicons from the light logo.
func refreshFavicons() {
	outputs := []string{
		"favicon.png",
		filepath.Join("public", "favicon.png"),
	}

	for _, outPath := range outputs {
		if err := corners.RoundCornersFile(defaultSource, outPath, defaultRadius); err != nil {
			fmt.Fprintf(os.Stderr, "round corners: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved rounded corner image to %s\n", outPath)
	}
}
