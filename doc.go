// Package tikz exports drawing primitives to PGF/TikZ markup.
//
// # Overview
//
// tikz converts in-memory vector geometry (paths, rectangles, lines,
// circles and polylines) into the textual commands of the PGF/TikZ
// picture language consumed by LaTeX. The library is write-only: it
// neither renders nor parses markup, and it reads caller-supplied
// coordinates without transforming them.
//
// # Quick Start
//
//	import "github.com/gogpu/tikz"
//
//	var buf bytes.Buffer
//	pic := tikz.NewPicture(&buf)
//
//	pic.Begin("scale=2")
//	pic.Draw(tikz.Line{P0: tikz.Pt(0, 0), P1: tikz.Pt(1, 1)}, "thick, dashed")
//
//	path := tikz.NewPath()
//	path.MoveTo(0, 0)
//	path.LineTo(1, 0)
//	path.CubicTo(1.5, 0.5, 1.5, 1.5, 1, 2)
//	pic.Fill(path, "fill=green!50")
//
//	pic.End()
//
// # Output Sink
//
// A Picture is bound to an io.Writer once, at construction, and owns it
// for the session. Every operation on an unbound Picture (nil writer, or
// the zero value) is a silent no-op, so partially configured pictures
// never produce partial markup.
//
// # Colors
//
// PGF/TikZ knows a handful of predefined color names. Arbitrary colors
// are introduced with RegisterColor, which derives a deterministic,
// digit-free identifier from the color's RGB value and emits a matching
// \definecolor command the first time the color is seen:
//
//	col := pic.RegisterColor(tikz.RGB8(100, 200, 0))
//	pic.Draw(path, "draw="+col)
//
// # Numeric Output
//
// Coordinates are written in fixed notation with a configurable number of
// fractional digits (default 2). The decimal separator is always '.' and
// there are no grouping separators, regardless of the host locale.
//
// # Concurrency
//
// A Picture mutates its sink and color registry without locking and must
// be confined to one goroutine. Only SetLogger and Logger are safe for
// concurrent use.
package tikz
