package svg

import (
	"strconv"
	"strings"
)

// A Path accumulates SVG path commands for use as the `d` attribute of a `path` element.  Coordinates are
// always given as absolute points; the path tracks the pen position and converts to deltas when emitting
// relative commands, the default.  Use Absolute to emit absolute commands instead.  Values are formatted
// with a fixed precision, then trailing zeros are trimmed from each value.
type Path struct {
	buf       []byte
	x, y      float64
	absolute  bool
	precision int
}

// NewPath returns an empty path with the default precision of 0 decimal places.
func NewPath() *Path { return &Path{} }

// Absolute switches the path to absolute commands; Relative switches back.
func (p *Path) Absolute() *Path { p.absolute = true; return p }

// Relative switches the path to relative commands, the default.
func (p *Path) Relative() *Path { p.absolute = false; return p }

// Precision sets the number of decimal places used when formatting coordinates.
func (p *Path) Precision(digits int) *Path { p.precision = digits; return p }

// MoveTo appends a move command and moves the pen to (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.cmd('m')
	p.point(x, y)
	p.x, p.y = x, y
	return p
}

// Line appends a line command to (x, y), collapsing to a horizontal or vertical command when the other
// coordinate is unchanged from the pen at the configured precision.
func (p *Path) Line(x, y float64) *Path {
	switch {
	case p.eq(y, p.y) && !p.eq(x, p.x):
		return p.Horizontal(x)
	case p.eq(x, p.x) && !p.eq(y, p.y):
		return p.Vertical(y)
	}
	p.cmd('l')
	p.point(x, y)
	p.x, p.y = x, y
	return p
}

// Horizontal appends a horizontal line command to x.
func (p *Path) Horizontal(x float64) *Path {
	p.cmd('h')
	p.val(p.coord(x, p.x))
	p.x = x
	return p
}

// Vertical appends a vertical line command to y.
func (p *Path) Vertical(y float64) *Path {
	p.cmd('v')
	p.val(p.coord(y, p.y))
	p.y = y
	return p
}

// Cubic appends a cubic Bezier command through the control points (x1, y1) and (x2, y2) to (x, y).
func (p *Path) Cubic(x1, y1, x2, y2, x, y float64) *Path {
	p.cmd('c')
	p.point(x1, y1)
	p.sep()
	p.point(x2, y2)
	p.sep()
	p.point(x, y)
	p.x, p.y = x, y
	return p
}

// SmoothCubic appends a smooth cubic Bezier command, reflecting the previous control point.
func (p *Path) SmoothCubic(x2, y2, x, y float64) *Path {
	p.cmd('s')
	p.point(x2, y2)
	p.sep()
	p.point(x, y)
	p.x, p.y = x, y
	return p
}

// Quad appends a quadratic Bezier command through the control point (x1, y1) to (x, y).
func (p *Path) Quad(x1, y1, x, y float64) *Path {
	p.cmd('q')
	p.point(x1, y1)
	p.sep()
	p.point(x, y)
	p.x, p.y = x, y
	return p
}

// SmoothQuad appends a smooth quadratic Bezier command, reflecting the previous control point.
func (p *Path) SmoothQuad(x, y float64) *Path {
	p.cmd('t')
	p.point(x, y)
	p.x, p.y = x, y
	return p
}

// Arc appends an elliptical arc command to (x, y).  The radii and rotation are emitted verbatim; the large
// and sweep flags are emitted as 0 or 1.
func (p *Path) Arc(rx, ry, rotate float64, large, sweep bool, x, y float64) *Path {
	p.cmd('a')
	p.val(rx)
	p.sep()
	p.val(ry)
	p.sep()
	p.val(rotate)
	p.sep()
	p.flag(large)
	p.sep()
	p.flag(sweep)
	p.sep()
	p.point(x, y)
	p.x, p.y = x, y
	return p
}

// ClosePath appends a close command.  The pen does not move.
func (p *Path) ClosePath() *Path {
	p.buf = append(p.buf, 'z')
	return p
}

// String returns the accumulated path definition.
func (p *Path) String() string { return string(p.buf) }

func (p *Path) cmd(c byte) {
	if p.absolute {
		c -= 'a' - 'A'
	}
	p.buf = append(p.buf, c)
}

// point emits an (x, y) pair, converted to a delta from the pen in relative mode.
func (p *Path) point(x, y float64) {
	if !p.absolute {
		x -= p.x
		y -= p.y
	}
	p.val(x)
	p.sep()
	p.val(y)
}

func (p *Path) coord(v, pen float64) float64 {
	if p.absolute {
		return v
	}
	return v - pen
}

func (p *Path) sep() { p.buf = append(p.buf, ' ') }

func (p *Path) flag(b bool) {
	if b {
		p.buf = append(p.buf, '1')
	} else {
		p.buf = append(p.buf, '0')
	}
}

// val formats a value with the configured precision and trims trailing zeros, along with the decimal point
// when nothing follows it.
func (p *Path) val(v float64) {
	s := strconv.FormatFloat(v, 'f', p.precision, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, `0`)
		s = strings.TrimSuffix(s, `.`)
	}
	if s == `-0` {
		s = `0`
	}
	p.buf = append(p.buf, s...)
}

// eq reports whether two values format identically at the configured precision.
func (p *Path) eq(a, b float64) bool {
	return strconv.FormatFloat(a, 'f', p.precision, 64) == strconv.FormatFloat(b, 'f', p.precision, 64)
}
