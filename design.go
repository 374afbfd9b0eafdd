package main

import "image/color"

// gridSize is the side of the logical design grid. All coordinates in the
// design tables are logical cells on this grid.
const gridSize = 32

type shapeKind int

const (
	shapePixel shapeKind = iota
	shapeHLine
	shapeVLine
	shapeRect  // filled
	shapeFrame // one-cell outline
)

// drawCmd is a single drawing instruction. Bounds are inclusive.
type drawCmd struct {
	kind           shapeKind
	x0, y0, x1, y1 int
	color          color.Color
}

func px(x, y int, c color.Color) drawCmd {
	return drawCmd{kind: shapePixel, x0: x, y0: y, x1: x, y1: y, color: c}
}

func hline(x0, x1, y int, c color.Color) drawCmd {
	return drawCmd{kind: shapeHLine, x0: x0, y0: y, x1: x1, y1: y, color: c}
}

func vline(x, y0, y1 int, c color.Color) drawCmd {
	return drawCmd{kind: shapeVLine, x0: x, y0: y0, x1: x, y1: y1, color: c}
}

func rect(x0, y0, x1, y1 int, c color.Color) drawCmd {
	return drawCmd{kind: shapeRect, x0: x0, y0: y0, x1: x1, y1: y1, color: c}
}

func frame(x0, y0, x1, y1 int, c color.Color) drawCmd {
	return drawCmd{kind: shapeFrame, x0: x0, y0: y0, x1: x1, y1: y1, color: c}
}

// cells calls fn for every logical cell covered by the command.
func (c drawCmd) cells(fn func(x, y int)) {
	switch c.kind {
	case shapeFrame:
		for x := c.x0; x <= c.x1; x++ {
			fn(x, c.y0)
			fn(x, c.y1)
		}
		for y := c.y0 + 1; y < c.y1; y++ {
			fn(c.x0, y)
			fn(c.x1, y)
		}
	default:
		for y := c.y0; y <= c.y1; y++ {
			for x := c.x0; x <= c.x1; x++ {
				fn(x, y)
			}
		}
	}
}

// iconDesign is drawn in order over the rounded background; later
// commands overwrite earlier ones.
var iconDesign = []drawCmd{
	// Monitor
	frame(4, 3, 27, 21, colorBorder),
	rect(5, 4, 26, 20, colorSurface),
	rect(14, 22, 17, 23, colorBorder), // stand
	hline(11, 20, 24, colorBorder),    // stand base

	// Office scene
	hline(6, 25, 18, colorBorder), // floor

	// Agent 1, working at a desk
	rect(9, 11, 10, 14, colorAgent1),
	px(9, 11, colorEye1),
	hline(7, 12, 15, colorMuted),
	px(8, 13, colorText),
	px(8, 14, colorText),
	px(7, 15, colorMuted),

	// Agent 2, working at a desk
	rect(15, 10, 16, 13, colorAgent2),
	px(15, 10, colorEye2),
	hline(13, 18, 14, colorMuted),
	px(14, 12, colorText),
	px(14, 13, colorText),

	// Agent 3, idle
	rect(22, 12, 23, 15, colorAgent3),

	// Status dots
	hline(9, 10, 9, colorSuccess),
	hline(15, 16, 8, colorSuccess),
	hline(22, 23, 10, colorWarning),

	// Title bar
	px(6, 4, colorError),
	px(8, 4, colorWarning),
	px(10, 4, colorSuccess),
	hline(5, 26, 5, colorBorder),

	// "A"
	px(11, 27, colorAccent),
	px(12, 26, colorAccent),
	px(13, 27, colorAccent),
	hline(11, 13, 28, colorAccent),
	px(11, 29, colorAccent),
	px(13, 29, colorAccent),

	// "M"
	px(15, 26, colorAccent),
	px(16, 27, colorAccent),
	px(17, 26, colorAccent),
	px(18, 27, colorAccent),
	px(19, 26, colorAccent),
	vline(15, 27, 29, colorAccent),
	vline(19, 27, 29, colorAccent),
}

// glowDesign is the one-cell ring just outside the monitor frame. It is
// alpha-composited instead of overwritten.
var glowDesign = []drawCmd{
	hline(3, 28, 2, colorGlow),
	hline(3, 28, 22, colorGlow),
	vline(3, 3, 21, colorGlow),
	vline(28, 3, 21, colorGlow),
}

// cornerRadiusSq is the squared distance from a corner zone's inner cell
// beyond which a cell is cut away.
const cornerRadiusSq = 7

// isCorner reports whether logical cell (x, y) falls outside the rounded
// background silhouette.
func isCorner(x, y int) bool {
	const lo, hi = 2, gridSize - 3 // inner cells of the 3x3 corner zones
	var dx, dy int
	switch {
	case x < lo+1:
		dx = lo - x
	case x > hi-1:
		dx = x - hi
	default:
		return false
	}
	switch {
	case y < lo+1:
		dy = lo - y
	case y > hi-1:
		dy = y - hi
	default:
		return false
	}
	return dx*dx+dy*dy > cornerRadiusSq
}
