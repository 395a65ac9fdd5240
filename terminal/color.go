package terminal

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

type colorKind uint8

const (
	colorDefault colorKind = iota
	colorANSI
	colorIndexed
	colorRGB
)

// Color is a terminal foreground or background color: the terminal default,
// one of the 8 named ANSI colors, an xterm 256-palette index, or a 24-bit
// RGB value. Comparable value; equality by ==.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// The terminal default plus the 8 named ANSI colors.
var (
	ColorDefault = Color{kind: colorDefault}
	ColorBlack   = Color{kind: colorANSI, index: 0}
	ColorRed     = Color{kind: colorANSI, index: 1}
	ColorGreen   = Color{kind: colorANSI, index: 2}
	ColorYellow  = Color{kind: colorANSI, index: 3}
	ColorBlue    = Color{kind: colorANSI, index: 4}
	ColorMagenta = Color{kind: colorANSI, index: 5}
	ColorCyan    = Color{kind: colorANSI, index: 6}
	ColorWhite   = Color{kind: colorANSI, index: 7}
)

// NewRGBColor returns a 24-bit true color.
func NewRGBColor(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IndexedColor returns an xterm 256-palette color.
func IndexedColor(index uint8) Color {
	return Color{kind: colorIndexed, index: index}
}

// ColorFromHex parses an "#rrggbb" web color into a true color.
func ColorFromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return NewRGBColor(r, g, b), nil
}

// Indexed converts the color to its nearest xterm 256-palette entry.
// Default and named ANSI colors map onto their fixed palette slots; true
// colors are matched perceptually against the 6x6x6 cube and the grayscale
// ramp (indices 16-255).
func (c Color) Indexed() Color {
	switch c.kind {
	case colorIndexed:
		return c
	case colorANSI:
		return IndexedColor(c.index)
	case colorRGB:
		return IndexedColor(nearestPaletteIndex(c.r, c.g, c.b))
	default:
		return c
	}
}

func (c Color) String() string {
	switch c.kind {
	case colorANSI:
		names := []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
		return names[c.index&7]
	case colorIndexed:
		return fmt.Sprintf("indexed(%d)", c.index)
	case colorRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	default:
		return "default"
	}
}

// Cube levels of the xterm 256 palette: index = 16 + 36*r + 6*g + b with
// r,g,b in [0,5]; grayscale ramp at 232-255 with level 8 + 10*(index-232).
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

var palette256 = buildPalette256()

func buildPalette256() [240]colorful.Color {
	var p [240]colorful.Color
	i := 0
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[i] = rgb255(cubeLevels[r], cubeLevels[g], cubeLevels[b])
				i++
			}
		}
	}
	for n := 0; n < 24; n++ {
		level := uint8(8 + 10*n)
		p[i] = rgb255(level, level, level)
		i++
	}
	return p
}

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// nearestPaletteIndex finds the perceptually closest palette entry at or
// above index 16. The 16 system colors are skipped since most terminals
// let users redefine them.
func nearestPaletteIndex(r, g, b uint8) uint8 {
	target := rgb255(r, g, b)
	best := 0
	bestDist := -1.0
	for i := range palette256 {
		d := target.DistanceLab(palette256[i])
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(16 + best)
}
