package tikz

import (
	"image/color"
	"math"

	"golang.org/x/image/colornames"
)

// Color is an opaque RGB color with each channel a fractional value
// in [0, 1].
type Color struct {
	R, G, B float64
}

// RGB creates a color from fractional channels in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// RGB8 creates a color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// FromColor converts a standard color.Color to Color. Alpha is discarded;
// TikZ expresses opacity through drawing options, not color values.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// Named looks up an SVG 1.1 color name, as defined by
// golang.org/x/image/colornames. The second return value reports whether
// the name is known.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// rgb8 quantizes the channels to 8 bits. Palette identity and name
// derivation both operate on the quantized value, so two colors in the
// same 8-bit bucket are the same color as far as the markup is concerned.
func (c Color) rgb8() (r, g, b uint8) {
	return quant8(c.R), quant8(c.G), quant8(c.B)
}

func quant8(v float64) uint8 {
	return uint8(clamp255(math.Round(v * 255)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// palette holds the colors PGF/TikZ predefines. They are returned by name
// and never registered or defined.
var palette = []struct {
	name    string
	r, g, b uint8
}{
	{"red", 255, 0, 0},
	{"green", 0, 255, 0},
	{"blue", 0, 0, 255},
	{"black", 0, 0, 0},
	{"white", 255, 255, 255},
	{"cyan", 0, 255, 255},
	{"magenta", 255, 0, 255},
	{"yellow", 255, 255, 0},
}

// digitNames maps decimal digits to letters so derived color names contain
// no digit characters (TikZ identifiers must be letters only). Hex digits
// a-f are already letters and pass through unchanged.
var digitNames = [10]byte{'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z'}

func nibbleName(n uint8) byte {
	if n < 10 {
		return digitNames[n]
	}
	return 'a' + (n - 10)
}

// name derives the canonical identifier for a non-palette color: the
// 24-bit lowercase hex form with every decimal digit replaced by a letter,
// prefixed with 'c'. Distinct quantized RGB triples hex-encode to distinct
// strings, so distinct colors always get distinct names.
func (c Color) name() string {
	r, g, b := c.rgb8()
	var buf [7]byte
	buf[0] = 'c'
	for i, ch := range [...]uint8{r, g, b} {
		buf[1+2*i] = nibbleName(ch >> 4)
		buf[2+2*i] = nibbleName(ch & 0x0f)
	}
	return string(buf[:])
}

// RegisterColor returns the TikZ identifier for c. Colors matching a
// predefined palette entry return the predefined name. Any other color
// gets a deterministic derived name, and the first registration writes a
// matching \definecolor command to the sink. Registering the same color
// again returns the same name and writes nothing.
func (p *Picture) RegisterColor(c Color) string {
	r, g, b := c.rgb8()
	for _, pc := range palette {
		if r == pc.r && g == pc.g && b == pc.b {
			return pc.name
		}
	}

	name := c.name()
	if p == nil {
		return name
	}
	if !p.colors[name] {
		p.write("\\definecolor{" + name + "}{rgb}{" +
			p.format.num(float64(r)/255) + ", " +
			p.format.num(float64(g)/255) + ", " +
			p.format.num(float64(b)/255) + "}\n")
		if p.colors == nil {
			p.colors = make(map[string]bool)
		}
		p.colors[name] = true
	}
	return name
}
