package fractal

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when a surface submits geometry.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill color of a fresh surface.
var ColorWhite = Color{1, 1, 1, 1}

// ParseHexColor parses a CSS-style "#rrggbb" or "#rrggbbaa" color.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// mustHex is ParseHexColor for package-level constants.
func mustHex(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA returns the color as a non-premultiplied 8-bit color.NRGBA.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Hex returns the color as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	n := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D point. The coordinate system has its origin at the top-left,
// with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Mid returns the midpoint between v and o.
func (v Vec2) Mid(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// Triangle is a filled triangle given by its three vertices.
type Triangle struct {
	A, B, C Vec2
}

// Square is an axis-aligned square given by its top-left corner and edge length.
type Square struct {
	Origin Vec2
	Size   float64
}

// Rect returns the square as a Rect.
func (s Square) Rect() Rect {
	return Rect{X: s.Origin.X, Y: s.Origin.Y, Width: s.Size, Height: s.Size}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Kind selects which fractal the dispatcher draws.
type Kind uint8

const (
	KindSierpinski Kind = iota // Sierpinski triangle
	KindMenger                 // Menger face (2D carpet: 3x3 grid minus center)
)

// Fill colors per kind.
var (
	ColorSierpinski = mustHex("#94d2bd")
	ColorMenger     = mustHex("#ee9b00")
)

// Kinds lists every kind in UI order.
var Kinds = []Kind{KindSierpinski, KindMenger}

// ParseKind maps a selector value ("sierpinski", "menger") to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sierpinski", "triangle":
		return KindSierpinski, nil
	case "menger", "carpet", "cube":
		return KindMenger, nil
	}
	return 0, fmt.Errorf("unknown fractal kind %q", s)
}

// String returns the selector value for k.
func (k Kind) String() string {
	switch k {
	case KindSierpinski:
		return "sierpinski"
	case KindMenger:
		return "menger"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// MaxDepth returns the deepest recursion level the dispatcher accepts for k.
func (k Kind) MaxDepth() int {
	if k == KindSierpinski {
		return 10
	}
	return 5
}

// FillColor returns the constant fill color used for k.
func (k Kind) FillColor() Color {
	if k == KindSierpinski {
		return ColorSierpinski
	}
	return ColorMenger
}

// Next returns the kind following k in Kinds, wrapping around.
func (k Kind) Next() Kind {
	for i, kk := range Kinds {
		if kk == k {
			return Kinds[(i+1)%len(Kinds)]
		}
	}
	return Kinds[0]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
