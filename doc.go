// Package corners applies a rounded-corner alpha mask to images.
//
// The transform decodes an image, rasterizes a rounded rectangle covering
// the full image bounds, and multiplies the alpha channel by that mask so
// the corners fade to transparent while color channels stay untouched.
// Sources without an alpha channel are treated as fully opaque. Everything
// runs in memory; output is always PNG.
package corners
