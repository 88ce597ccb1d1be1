package svg

import (
	"strconv"
	"strings"
)

// Points accumulates coordinate pairs for the `points` attribute of `polygon` and `polyline` elements.
type Points struct {
	buf       []byte
	precision int
}

// NewPoints returns an empty point list with the default precision of 2 decimal places.
func NewPoints() *Points { return &Points{precision: 2} }

// Precision sets the number of decimal places used when formatting coordinates.
func (p *Points) Precision(digits int) *Points { p.precision = digits; return p }

// Add appends a coordinate pair.
func (p *Points) Add(x, y float64) *Points {
	if len(p.buf) > 0 {
		p.buf = append(p.buf, ' ')
	}
	p.val(x)
	p.buf = append(p.buf, ',')
	p.val(y)
	return p
}

// String returns the accumulated point list, such as `1,2 2,1`.
func (p *Points) String() string { return string(p.buf) }

func (p *Points) val(v float64) {
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
