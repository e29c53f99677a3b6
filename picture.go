package tikz

import (
	"io"
	"strconv"
	"strings"
)

// Option configures a Picture during creation.
//
// Example:
//
//	// Default two-digit precision
//	pic := tikz.NewPicture(w)
//
//	// Three fractional digits
//	pic := tikz.NewPicture(w, tikz.WithPrecision(3))
type Option func(*pictureOptions)

// pictureOptions holds optional configuration for Picture creation.
type pictureOptions struct {
	precision int
}

// defaultPictureOptions returns the default picture options.
func defaultPictureOptions() pictureOptions {
	return pictureOptions{precision: defaultPrecision}
}

// WithPrecision sets the number of fractional digits used for all numeric
// output. Negative values are clamped to 0.
func WithPrecision(digits int) Option {
	return func(o *pictureOptions) {
		o.precision = digits
	}
}

// Picture writes PGF/TikZ commands to an output sink.
//
// The sink is bound once, at construction, and owned by the picture for
// the session. A picture without a sink (nil writer, or the zero value)
// performs every operation as a silent no-op. Rebinding is not supported;
// create a new Picture per document.
type Picture struct {
	w      io.Writer
	format formatter
	colors map[string]bool
}

// NewPicture binds w as the output sink for a new picture. Passing a nil
// writer yields a picture whose operations are all no-ops.
func NewPicture(w io.Writer, opts ...Option) *Picture {
	o := defaultPictureOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Picture{
		w:      w,
		format: newFormatter(o.precision),
		colors: make(map[string]bool),
	}
}

// Begin opens the picture environment:
//
//	\begin{tikzpicture}[options]
//
// Call Begin once before the first drawing command and End once after
// the last.
func (p *Picture) Begin(options string) {
	p.beginEnv("tikzpicture", options)
}

// End closes the picture environment with \end{tikzpicture}.
func (p *Picture) End() {
	p.write("\\end{tikzpicture}\n")
}

// BeginScope opens a scope environment:
//
//	\begin{scope}[options]
//
// Scopes bound the effect of options and of Clip. Every BeginScope needs
// a matching EndScope.
func (p *Picture) BeginScope(options string) {
	p.beginEnv("scope", options)
}

// EndScope closes a scope started with BeginScope.
func (p *Picture) EndScope() {
	p.write("\\end{scope}\n")
}

func (p *Picture) beginEnv(env, options string) {
	if options == "" {
		p.write("\\begin{" + env + "}\n")
		return
	}
	p.write("\\begin{" + env + "}[" + options + "]\n")
}

// Newline inserts count newline characters, for manually structuring the
// generated picture.
func (p *Picture) Newline(count int) {
	for i := 0; i < count; i++ {
		p.write("\n")
	}
}

// Comment writes "% text" on its own line.
func (p *Picture) Comment(text string) {
	p.write("% " + text + "\n")
}

// Raw writes text verbatim to the sink, giving full control over the
// generated picture.
func (p *Picture) Raw(text string) {
	if text == "" {
		return
	}
	p.write(text)
}

// RawFloat writes a number rendered with the configured precision.
func (p *Picture) RawFloat(v float64) {
	if !p.bound() {
		return
	}
	p.write(p.format.num(v))
}

// RawInt writes an integer.
func (p *Picture) RawInt(n int) {
	if !p.bound() {
		return
	}
	p.write(strconv.Itoa(n))
}

// Path writes s with the \path verb: the coordinates take part in the
// picture's bounding box without being drawn.
func (p *Picture) Path(s Shape, options string) {
	p.command("path", s, options)
}

// Draw strokes s with the \draw verb.
func (p *Picture) Draw(s Shape, options string) {
	p.command("draw", s, options)
}

// Fill fills s with the \fill verb.
func (p *Picture) Fill(s Shape, options string) {
	p.command("fill", s, options)
}

// Clip restricts subsequent drawing to s with the \clip verb. Combine
// with BeginScope and EndScope to bound the clipped region.
func (p *Picture) Clip(s Shape) {
	p.command("clip", s, "")
}

// command converts a shape and hands the result to emit. Verb and
// geometry are independent axes; each combination above is a one-line
// composition of the two.
func (p *Picture) command(verb string, s Shape, options string) {
	if !p.bound() || s == nil {
		return
	}
	p.emit(verb, options, s.markupBody(p.format))
}

// emit writes a single drawing command:
//
//	\<verb>[options] <body>;
//
// An empty body writes nothing, so degenerate shapes never leave partial
// commands in the sink.
func (p *Picture) emit(verb, options, body string) {
	if body == "" || !p.bound() {
		return
	}
	var sb strings.Builder
	sb.WriteByte('\\')
	sb.WriteString(verb)
	if options != "" {
		sb.WriteByte('[')
		sb.WriteString(options)
		sb.WriteByte(']')
	}
	sb.WriteByte(' ')
	sb.WriteString(body)
	sb.WriteString(";\n")
	p.write(sb.String())
}

// write appends text to the sink. Unbound pictures drop the text. The
// sink has no error surface; a failed write is logged and the session
// continues.
func (p *Picture) write(s string) {
	if !p.bound() {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		Logger().Warn("tikz: write to output sink failed", "err", err)
	}
}

// bound reports whether the picture has an output sink.
func (p *Picture) bound() bool {
	return p != nil && p.w != nil
}
