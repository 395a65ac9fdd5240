// Package graphics draws shapes and text onto a character-cell terminal.
//
// The central type is TerminalTextGraphics, which writes directly against a
// terminal sink and minimizes redundant cursor-move and attribute-set
// sequences while drawing.
package graphics

import "github.com/mobwell/lanterna/terminal"

// TextGraphics is the drawing surface offered to callers. Implementations
// carry a pen (current position, colors, and modifiers) that the shape and
// string operations draw with.
//
// The pen setters return the receiver so calls can be chained; the drawing
// operations return an error because every cell write can fail against the
// underlying sink.
type TextGraphics interface {
	// Size returns the grid dimensions the surface was created with.
	Size() terminal.Size

	// SetPosition moves the pen, repositioning the terminal cursor.
	SetPosition(pos terminal.Position) error

	// Position returns the current pen position.
	Position() terminal.Position

	SetForegroundColor(c terminal.Color) TextGraphics
	SetBackgroundColor(c terminal.Color) TextGraphics
	EnableModifiers(m terminal.SGR) TextGraphics
	DisableModifiers(m terminal.SGR) TextGraphics
	ClearModifiers() TextGraphics

	// WriteCell places one styled glyph. Positions outside the size
	// snapshot are ignored.
	WriteCell(pos terminal.Position, ch terminal.Character) error

	// DrawLine draws from the pen position to the given end point and
	// leaves the pen at the end point.
	DrawLine(to terminal.Position, ch rune) error

	// DrawTriangle outlines the triangle spanned by the pen position and
	// the two given vertices.
	DrawTriangle(p1, p2 terminal.Position, ch rune) error

	// FillTriangle fills the triangle spanned by the pen position and the
	// two given vertices.
	FillTriangle(p1, p2 terminal.Position, ch rune) error

	// DrawRectangle outlines a rectangle anchored at the pen position.
	DrawRectangle(size terminal.Size, ch rune) error

	// FillRectangle fills a rectangle anchored at the pen position.
	FillRectangle(size terminal.Size, ch rune) error

	// PutString writes the string left to right from the pen position and
	// leaves the pen one cell past the last glyph.
	PutString(s string) error
}
