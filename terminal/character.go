package terminal

// Character is the full graphic state of one cell: a glyph plus the colors
// and modifiers it is drawn with. Immutable value; equality by ==.
type Character struct {
	Rune       rune
	Foreground Color
	Background Color
	Modifiers  SGR
}

// DefaultCharacter returns the rune with default colors and no modifiers.
func DefaultCharacter(r rune) Character {
	return Character{Rune: r, Foreground: ColorDefault, Background: ColorDefault}
}

// WithRune returns a copy with the glyph replaced.
func (c Character) WithRune(r rune) Character {
	c.Rune = r
	return c
}

// WithForeground returns a copy with the foreground color replaced.
func (c Character) WithForeground(fg Color) Character {
	c.Foreground = fg
	return c
}

// WithBackground returns a copy with the background color replaced.
func (c Character) WithBackground(bg Color) Character {
	c.Background = bg
	return c
}

// WithModifiers returns a copy with the modifier set replaced.
func (c Character) WithModifiers(m SGR) Character {
	c.Modifiers = m
	return c
}
