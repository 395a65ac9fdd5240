// Package terminal defines the character-cell terminal boundary: the value
// types describing cells and the Terminal sink interface, with an ANSI
// escape-sequence implementation over an io.Writer and an adapter for
// tcell screens.
package terminal

// Terminal is the stateful sink that performs cursor moves, attribute
// changes, and glyph emission. It is a shared resource: code outside any
// one caller may mutate its cursor and graphic state at any time.
//
// Precondition for PutCharacter: the sink advances its cursor exactly one
// column per emitted glyph and never wraps or scrolls on emission. Callers
// that cache cursor positions rely on it.
type Terminal interface {
	// Size returns the current grid dimensions.
	Size() (Size, error)

	// SetCursorPosition moves the cursor (0-indexed).
	SetCursorPosition(pos Position) error

	// PutCharacter emits one glyph at the cursor and advances it one column.
	PutCharacter(r rune) error

	// ResetColorAndSGR restores default colors and clears all modifiers.
	ResetColorAndSGR() error

	// SetForegroundColor sets the pen foreground for subsequent glyphs.
	SetForegroundColor(c Color) error

	// SetBackgroundColor sets the pen background for subsequent glyphs.
	SetBackgroundColor(c Color) error

	// EnableSGR turns on one style modifier.
	EnableSGR(m SGR) error
}

// Flusher is an optional capability of sinks that buffer output. Callers
// should flush after a burst of drawing to make it visible.
type Flusher interface {
	Flush() error
}
