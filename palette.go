package main

import "image/color"

// Palette matches the app theme (tailwind pixel-* colors).
var (
	colorBG          = color.RGBA{15, 23, 42, 255}    // #0f172a
	colorSurface     = color.RGBA{30, 41, 59, 255}    // #1e293b
	colorBorder      = color.RGBA{51, 65, 85, 255}    // #334155
	colorAccent      = color.RGBA{34, 211, 238, 255}  // #22d3ee
	colorSuccess     = color.RGBA{52, 211, 153, 255}  // #34d399
	colorWarning     = color.RGBA{251, 191, 36, 255}  // #fbbf24
	colorError       = color.RGBA{251, 113, 133, 255} // #fb7185
	colorText        = color.RGBA{230, 241, 255, 255} // #e6f1ff
	colorMuted       = color.RGBA{148, 163, 184, 255} // #94a3b8
	colorTransparent = color.RGBA{0, 0, 0, 0}
)

// Agent body colors.
var (
	colorAgent1 = colorAccent
	colorAgent2 = colorSuccess
	colorAgent3 = colorWarning
)

var (
	colorEye1 = color.RGBA{200, 240, 255, 255}
	colorEye2 = color.RGBA{200, 255, 220, 255}

	// colorGlow is composited over the canvas, never written directly.
	colorGlow = color.NRGBA{34, 211, 238, 40}
)
