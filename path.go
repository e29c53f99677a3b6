package tikz

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
//
// TikZ path syntax has no quadratic form; see Path.markupBody for how
// quadratic elements are handled during conversion.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path as an ordered sequence of elements.
// A new MoveTo starts a new subpath.
type Path struct {
	elements []PathElement

	// Cubic curve reassembly state for AppendElements.
	curve    curveState
	control1 Point
	control2 Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo draws a cubic Bezier curve with control points (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.curve = curveNone
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// ElementKind identifies a low-level path element.
//
// Low-level element streams deliver a cubic curve as three consecutive
// single-coordinate elements: one CurveToElem carrying the first control
// point, followed by two CurveToDataElem carrying the second control point
// and the end point. AppendElements reassembles them into CubicTo.
type ElementKind uint8

const (
	MoveToElem ElementKind = iota
	LineToElem
	CurveToElem
	CurveToDataElem
)

// elementKindNames maps ElementKind values to their string representation.
var elementKindNames = [...]string{
	MoveToElem:      "MoveTo",
	LineToElem:      "LineTo",
	CurveToElem:     "CurveTo",
	CurveToDataElem: "CurveToData",
}

// String returns the string representation of an ElementKind.
func (k ElementKind) String() string {
	if int(k) < len(elementKindNames) {
		return elementKindNames[k]
	}
	return "Unknown"
}

// Element is a low-level path element: a kind tag and one coordinate.
type Element struct {
	Kind  ElementKind
	Point Point
}

// curveState tracks how many coordinates of a cubic curve have been seen
// while reassembling it from a low-level element stream. An explicit state
// makes an out-of-sequence element a detectable invalid transition rather
// than a silently ignored counter value.
type curveState uint8

const (
	curveNone curveState = iota
	curveControl1
	curveControl2
)

// AppendElements appends a low-level element stream to the path,
// reassembling cubic curves from their three-element form.
//
// Malformed streams are not fatal: an incomplete curve is dropped and an
// orphaned CurveToDataElem is skipped, each with a logged warning, and
// processing continues with the next element.
func (p *Path) AppendElements(elems []Element) {
	for _, el := range elems {
		switch el.Kind {
		case MoveToElem, LineToElem:
			p.dropPendingCurve(el.Kind)
			if el.Kind == MoveToElem {
				p.elements = append(p.elements, MoveTo{Point: el.Point})
			} else {
				p.elements = append(p.elements, LineTo{Point: el.Point})
			}
		case CurveToElem:
			p.dropPendingCurve(el.Kind)
			p.control1 = el.Point
			p.curve = curveControl1
		case CurveToDataElem:
			switch p.curve {
			case curveControl1:
				p.control2 = el.Point
				p.curve = curveControl2
			case curveControl2:
				p.elements = append(p.elements, CubicTo{
					Control1: p.control1,
					Control2: p.control2,
					Point:    el.Point,
				})
				p.curve = curveNone
			default:
				Logger().Warn("tikz: curve data element without preceding curve element, skipping")
			}
		default:
			Logger().Warn("tikz: unknown path element kind, skipping",
				"kind", uint8(el.Kind))
		}
	}
}

// dropPendingCurve discards a half-assembled cubic curve when a
// non-continuation element arrives mid-curve.
func (p *Path) dropPendingCurve(next ElementKind) {
	if p.curve == curveNone {
		return
	}
	Logger().Warn("tikz: incomplete cubic curve in element stream, dropping",
		"next", next.String())
	p.curve = curveNone
}
