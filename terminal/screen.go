package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenTerminal exposes a tcell.Screen as a Terminal sink. It keeps its
// own pen (current colors and modifiers) and cursor, since tcell takes the
// full style with every cell write. Drawing goes to tcell's back buffer;
// call Flush to make it visible.
type ScreenTerminal struct {
	screen tcell.Screen
	cursor Position
	style  tcell.Style
}

// NewScreenTerminal wraps an initialized tcell screen.
func NewScreenTerminal(screen tcell.Screen) *ScreenTerminal {
	return &ScreenTerminal{
		screen: screen,
		style:  tcell.StyleDefault,
	}
}

// Size reports the screen dimensions. It never fails.
func (s *ScreenTerminal) Size() (Size, error) {
	cols, rows := s.screen.Size()
	return Size{Columns: cols, Rows: rows}, nil
}

// SetCursorPosition moves the write position.
func (s *ScreenTerminal) SetCursorPosition(pos Position) error {
	s.cursor = pos
	return nil
}

// PutCharacter writes the glyph with the current pen and advances the
// cursor one column.
func (s *ScreenTerminal) PutCharacter(r rune) error {
	s.screen.SetContent(s.cursor.Column, s.cursor.Row, r, nil, s.style)
	s.cursor = s.cursor.WithRelativeColumn(1)
	return nil
}

// ResetColorAndSGR restores the default pen.
func (s *ScreenTerminal) ResetColorAndSGR() error {
	s.style = tcell.StyleDefault
	return nil
}

// SetForegroundColor updates the pen foreground.
func (s *ScreenTerminal) SetForegroundColor(c Color) error {
	s.style = s.style.Foreground(toTcellColor(c))
	return nil
}

// SetBackgroundColor updates the pen background.
func (s *ScreenTerminal) SetBackgroundColor(c Color) error {
	s.style = s.style.Background(toTcellColor(c))
	return nil
}

// EnableSGR turns on one modifier on the pen.
func (s *ScreenTerminal) EnableSGR(m SGR) error {
	switch m {
	case SGRBold:
		s.style = s.style.Bold(true)
	case SGRDim:
		s.style = s.style.Dim(true)
	case SGRItalic:
		s.style = s.style.Italic(true)
	case SGRUnderline:
		s.style = s.style.Underline(true)
	case SGRBlink:
		s.style = s.style.Blink(true)
	case SGRReverse:
		s.style = s.style.Reverse(true)
	case SGRCrossedOut:
		s.style = s.style.StrikeThrough(true)
	}
	return nil
}

// Flush pushes tcell's back buffer to the physical terminal.
func (s *ScreenTerminal) Flush() error {
	s.screen.Show()
	return nil
}

func toTcellColor(c Color) tcell.Color {
	switch c.kind {
	case colorANSI:
		return tcell.PaletteColor(int(c.index))
	case colorIndexed:
		return tcell.PaletteColor(int(c.index))
	case colorRGB:
		return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
	default:
		return tcell.ColorDefault
	}
}
