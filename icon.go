package main

import (
	"image"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// renderIcon draws the pixel-art icon on a size x size canvas. Each logical
// cell of the 32x32 design becomes a scale x scale block, scale = size/32.
// Sizes below the grid are rendered at 32 and sampled down.
func renderIcon(size int) *image.RGBA {
	if size < gridSize {
		return resizeNearest(renderIcon(gridSize), size)
	}
	scale := size / gridSize

	dc := gg.NewContext(size, size)
	dc.SetColor(colorTransparent)
	dc.Clear()

	fill := func(x, y int) {
		for fy := y * scale; fy < (y+1)*scale; fy++ {
			for fx := x * scale; fx < (x+1)*scale; fx++ {
				dc.SetPixel(fx, fy)
			}
		}
	}

	// Rounded background
	dc.SetColor(colorBG)
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			if !isCorner(x, y) {
				fill(x, y)
			}
		}
	}

	for _, cmd := range iconDesign {
		dc.SetColor(cmd.color)
		cmd.cells(fill)
	}

	img := dc.Image().(*image.RGBA)
	drawGlow(img, scale)
	return img
}

// drawGlow composites the translucent ring around the monitor.
func drawGlow(img *image.RGBA, scale int) {
	for _, cmd := range glowDesign {
		src := image.NewUniform(cmd.color)
		cmd.cells(func(x, y int) {
			xdraw.Draw(img, cellRect(x, y, scale), src, image.Point{}, xdraw.Over)
		})
	}
}

// cellRect returns the physical rectangle covered by logical cell (x, y).
func cellRect(x, y, scale int) image.Rectangle {
	return image.Rect(x*scale, y*scale, (x+1)*scale, (y+1)*scale)
}
