package main

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// resizeNearest scales src to size x size with nearest-neighbor sampling,
// keeping hard pixel edges.
func resizeNearest(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// renderBase returns the size the design is actually rendered at before
// resampling to size: size itself for multiples of 32, 32 for anything
// smaller, otherwise the next multiple of 32.
func renderBase(size int) int {
	switch {
	case size%gridSize == 0:
		return size
	case size < gridSize:
		return gridSize
	default:
		return (size/gridSize + 1) * gridSize
	}
}

// renderAt renders the icon at exactly size x size.
func renderAt(size int) *image.RGBA {
	base := renderBase(size)
	img := renderIcon(base)
	if base != size {
		img = resizeNearest(img, size)
	}
	return img
}
