package tikz

import (
	"fmt"
	"strings"
)

// subpathIndent prefixes every subpath after the first, so multi-line path
// bodies stay readable in the generated markup.
const subpathIndent = "    "

// Shape is a drawable primitive. markupBody renders the TikZ coordinate
// body for the shape, or "" when the shape is degenerate. Degenerate
// shapes produce no output at all when drawn.
type Shape interface {
	markupBody(f formatter) string
}

// markupBody converts the path to TikZ path syntax, one line per subpath.
//
// Every subpath boundary (a MoveTo after the first, or an explicit Close)
// closes the subpath before it with " -- cycle". The trailing subpath is
// left open at end of stream unless explicitly closed. Quadratic curve
// elements have no TikZ path form and are skipped with a logged warning.
func (p *Path) markupBody(f formatter) string {
	if p.IsEmpty() {
		return ""
	}

	var completed []string
	var current strings.Builder

	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			if current.Len() > 0 {
				completed = append(completed, current.String()+" -- cycle")
				current.Reset()
			}
			if len(completed) > 0 {
				current.WriteString(subpathIndent)
			}
			current.WriteString(f.coord(e.Point))
		case LineTo:
			current.WriteString(" -- " + f.coord(e.Point))
		case CubicTo:
			current.WriteString(" .. controls " + f.coord(e.Control1) +
				" and " + f.coord(e.Control2) + " .. " + f.coord(e.Point))
		case Close:
			if current.Len() > 0 {
				completed = append(completed, current.String()+" -- cycle")
				current.Reset()
			}
		case QuadTo:
			Logger().Warn("tikz: quadratic curve has no TikZ path form, skipping segment")
		default:
			Logger().Warn("tikz: unsupported path element, skipping",
				"element", fmt.Sprintf("%T", el))
		}
	}

	if current.Len() > 0 {
		completed = append(completed, current.String())
	}
	return strings.Join(completed, "\n")
}

// markupBody renders "(min) rectangle (max)", or "" for a rectangle with
// no area.
func (r Rect) markupBody(f formatter) string {
	if r.IsEmpty() {
		return ""
	}
	return f.coord(r.Min) + " rectangle " + f.coord(r.Max)
}

func (l Line) markupBody(f formatter) string {
	return f.coord(l.P0) + " -- " + f.coord(l.P1)
}

// markupBody renders "(center) circle (Rcm)", or "" for a non-positive
// radius.
func (c Circle) markupBody(f formatter) string {
	if c.Radius <= 0 {
		return ""
	}
	return f.coord(c.Center) + " circle (" + f.num(c.Radius) + "cm)"
}

// markupBody joins the points with " -- ". A closed polyline ends in
// " -- cycle" rather than repeating its first point. Fewer than two
// points is degenerate.
func (pl Polyline) markupBody(f formatter) string {
	if len(pl.Points) < 2 {
		return ""
	}
	parts := make([]string, len(pl.Points))
	for i, pt := range pl.Points {
		parts[i] = f.coord(pt)
	}
	body := strings.Join(parts, " -- ")
	if pl.Closed {
		body += " -- cycle"
	}
	return body
}
