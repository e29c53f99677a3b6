package tikz

import "strconv"

// defaultPrecision is the number of fractional digits used when no
// WithPrecision option is given. A value of 2 renders numbers in the
// format '2.34'.
const defaultPrecision = 2

// formatter renders numbers in fixed notation with a configured number of
// fractional digits. The decimal separator is always '.' and there are no
// grouping separators, independent of the host locale.
type formatter struct {
	precision int
}

// newFormatter creates a formatter. The precision is clamped to >= 0.
func newFormatter(precision int) formatter {
	if precision < 0 {
		precision = 0
	}
	return formatter{precision: precision}
}

// num renders a single scalar.
func (f formatter) num(v float64) string {
	return strconv.FormatFloat(v, 'f', f.precision, 64)
}

// coord renders a point as "(x, y)".
func (f formatter) coord(pt Point) string {
	return "(" + f.num(pt.X) + ", " + f.num(pt.Y) + ")"
}
