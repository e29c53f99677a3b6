package tikz

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
)

func TestRegisterColorPalette(t *testing.T) {
	tests := []struct {
		name string
		c    Color
	}{
		{"red", RGB8(255, 0, 0)},
		{"green", RGB8(0, 255, 0)},
		{"blue", RGB8(0, 0, 255)},
		{"black", RGB8(0, 0, 0)},
		{"white", RGB8(255, 255, 255)},
		{"cyan", RGB8(0, 255, 255)},
		{"magenta", RGB8(255, 0, 255)},
		{"yellow", RGB8(255, 255, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pic := NewPicture(&buf)
			if got := pic.RegisterColor(tt.c); got != tt.name {
				t.Errorf("RegisterColor() = %q, want %q", got, tt.name)
			}
			if buf.Len() != 0 {
				t.Errorf("palette color wrote %q, want no output", buf.String())
			}
		})
	}
}

func TestRegisterColorPaletteFractional(t *testing.T) {
	// Fractional channels quantize to 8 bits before palette matching.
	var buf bytes.Buffer
	pic := NewPicture(&buf)
	if got := pic.RegisterColor(RGB(1, 0, 0)); got != "red" {
		t.Errorf("RegisterColor(RGB(1, 0, 0)) = %q, want %q", got, "red")
	}
}

func TestRegisterColorDerivedName(t *testing.T) {
	var buf bytes.Buffer
	pic := NewPicture(&buf)

	// RGB (100, 200, 0) is hex 64c800: digits map 6→w 4→u 8→y 0→q, hex
	// letter c passes through, prefixed with 'c'.
	got := pic.RegisterColor(RGB8(100, 200, 0))
	if got != "cwucyqq" {
		t.Errorf("RegisterColor() = %q, want %q", got, "cwucyqq")
	}

	want := "\\definecolor{cwucyqq}{rgb}{0.39, 0.78, 0.00}\n"
	if buf.String() != want {
		t.Errorf("definition = %q, want %q", buf.String(), want)
	}
}

func TestRegisterColorIdempotent(t *testing.T) {
	var buf bytes.Buffer
	pic := NewPicture(&buf)

	first := pic.RegisterColor(RGB8(10, 20, 30))
	n := buf.Len()
	second := pic.RegisterColor(RGB8(10, 20, 30))

	if first != second {
		t.Errorf("second registration = %q, want %q", second, first)
	}
	if buf.Len() != n {
		t.Errorf("second registration grew output from %d to %d bytes", n, buf.Len())
	}
	if got := strings.Count(buf.String(), "\\definecolor"); got != 1 {
		t.Errorf("output contains %d definitions, want 1", got)
	}
}

func TestRegisterColorNamesDigitFree(t *testing.T) {
	var buf bytes.Buffer
	pic := NewPicture(&buf)

	channels := []uint8{0, 37, 128, 254, 255}
	for _, r := range channels {
		for _, g := range channels {
			for _, b := range channels {
				name := pic.RegisterColor(RGB8(r, g, b))
				if strings.ContainsAny(name, "0123456789") {
					t.Errorf("RegisterColor(%d, %d, %d) = %q, contains digits", r, g, b, name)
				}
			}
		}
	}
}

func TestRegisterColorInjective(t *testing.T) {
	var buf bytes.Buffer
	pic := NewPicture(&buf)

	seen := make(map[string][3]uint8)
	channels := []uint8{0, 1, 15, 16, 100, 200, 255}
	for _, r := range channels {
		for _, g := range channels {
			for _, b := range channels {
				rgb := [3]uint8{r, g, b}
				name := pic.RegisterColor(RGB8(r, g, b))
				if prev, ok := seen[name]; ok && prev != rgb {
					t.Errorf("name %q maps both %v and %v", name, prev, rgb)
				}
				seen[name] = rgb
			}
		}
	}
}

func TestRegisterColorUnbound(t *testing.T) {
	var pic Picture

	got := pic.RegisterColor(RGB8(1, 2, 3))
	if got == "" {
		t.Error("RegisterColor() on unbound picture returned empty name")
	}
	if again := pic.RegisterColor(RGB8(1, 2, 3)); again != got {
		t.Errorf("second registration = %q, want %q", again, got)
	}
}

func TestFromColor(t *testing.T) {
	var buf bytes.Buffer
	pic := NewPicture(&buf)

	if got := pic.RegisterColor(FromColor(color.NRGBA{R: 255, A: 255})); got != "red" {
		t.Errorf("RegisterColor(FromColor(red)) = %q, want %q", got, "red")
	}
}

func TestNamed(t *testing.T) {
	c, ok := Named("steelblue")
	if !ok {
		t.Fatal("Named(steelblue) not found")
	}

	var buf bytes.Buffer
	pic := NewPicture(&buf)
	// steelblue is (70, 130, 180), hex 4682b4.
	if got := pic.RegisterColor(c); got != "cuwysbu" {
		t.Errorf("RegisterColor(steelblue) = %q, want %q", got, "cuwysbu")
	}

	if _, ok := Named("not-a-color"); ok {
		t.Error("Named(not-a-color) = true, want false")
	}
}

func TestColorQuantization(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint8
	}{
		{"midpoint rounds up", RGB(0.5, 0, 0), 128, 0, 0},
		{"clamps high", RGB(1.5, 0, 0), 255, 0, 0},
		{"clamps low", RGB(-0.5, 0, 0), 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.rgb8()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("rgb8() = (%d, %d, %d), want (%d, %d, %d)",
					r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}
