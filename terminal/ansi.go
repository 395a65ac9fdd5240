package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ColorMode selects how colors are encoded on the wire.
type ColorMode int

const (
	// ColorModeTrueColor emits 24-bit SGR sequences (38;2;r;g;b).
	ColorModeTrueColor ColorMode = iota
	// ColorMode256 converts true colors to the xterm 256 palette (38;5;n).
	ColorMode256
)

// ErrSizeUnavailable is returned by Size when the writer is not a terminal
// and no fixed size was configured.
var ErrSizeUnavailable = errors.New("terminal size unavailable")

// Escape sequence fragments shared by all ANSITerminal instances.
var (
	csiReset       = "\x1b[0m"
	csiClear       = "\x1b[2J\x1b[H"
	csiCursorHide  = "\x1b[?25l"
	csiCursorShow  = "\x1b[?25h"
	csiAltScrEnter = "\x1b[?1049h"
	csiAltScrExit  = "\x1b[?1049l"
)

// SGR parameter codes on the wire.
var sgrCodes = map[SGR]int{
	SGRBold:       1,
	SGRDim:        2,
	SGRItalic:     3,
	SGRUnderline:  4,
	SGRBlink:      5,
	SGRReverse:    7,
	SGRCrossedOut: 9,
}

// ANSITerminal is a Terminal that emits xterm-style escape sequences to an
// io.Writer. Output is buffered and flushed after every operation, so a
// failing writer surfaces on the operation that hit it.
//
// When constructed on a TTY (for example os.Stdout) the size query asks
// the OS; otherwise a fixed size must be supplied with WithSize.
type ANSITerminal struct {
	w     *bufio.Writer
	file  *os.File
	fixed Size
	sized bool
	mode  ColorMode
	saved *term.State
}

// ANSIOption configures an ANSITerminal.
type ANSIOption func(*ANSITerminal)

// WithSize pins the grid size instead of querying the OS.
func WithSize(s Size) ANSIOption {
	return func(t *ANSITerminal) {
		t.fixed = s
		t.sized = true
	}
}

// WithColorMode overrides the default true-color encoding.
func WithColorMode(m ColorMode) ANSIOption {
	return func(t *ANSITerminal) {
		t.mode = m
	}
}

// NewANSITerminal wraps the writer in a buffered ANSI sink.
func NewANSITerminal(w io.Writer, opts ...ANSIOption) *ANSITerminal {
	t := &ANSITerminal{
		w:    bufio.NewWriterSize(w, 4096),
		mode: ColorModeTrueColor,
	}
	if f, ok := w.(*os.File); ok {
		t.file = f
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Size returns the configured fixed size, or the OS-reported size when the
// underlying writer is a terminal.
func (t *ANSITerminal) Size() (Size, error) {
	if t.sized {
		return t.fixed, nil
	}
	if t.file != nil && term.IsTerminal(int(t.file.Fd())) {
		cols, rows, err := term.GetSize(int(t.file.Fd()))
		if err != nil {
			return Size{}, fmt.Errorf("query terminal size: %w", err)
		}
		return Size{Columns: cols, Rows: rows}, nil
	}
	return Size{}, ErrSizeUnavailable
}

// SetCursorPosition moves the cursor with a CSI H sequence (1-indexed on
// the wire, 0-indexed in the API).
func (t *ANSITerminal) SetCursorPosition(pos Position) error {
	fmt.Fprintf(t.w, "\x1b[%d;%dH", pos.Row+1, pos.Column+1)
	return t.w.Flush()
}

// PutCharacter emits the glyph at the cursor. The terminal advances its
// cursor one column.
func (t *ANSITerminal) PutCharacter(r rune) error {
	t.w.WriteRune(r)
	return t.w.Flush()
}

// ResetColorAndSGR emits SGR 0.
func (t *ANSITerminal) ResetColorAndSGR() error {
	t.w.WriteString(csiReset)
	return t.w.Flush()
}

// SetForegroundColor emits the foreground sequence for the color.
func (t *ANSITerminal) SetForegroundColor(c Color) error {
	t.writeColor(c, false)
	return t.w.Flush()
}

// SetBackgroundColor emits the background sequence for the color.
func (t *ANSITerminal) SetBackgroundColor(c Color) error {
	t.writeColor(c, true)
	return t.w.Flush()
}

// EnableSGR turns on a single style modifier.
func (t *ANSITerminal) EnableSGR(m SGR) error {
	if code, ok := sgrCodes[m]; ok {
		fmt.Fprintf(t.w, "\x1b[%dm", code)
	}
	return t.w.Flush()
}

func (t *ANSITerminal) writeColor(c Color, background bool) {
	base := 0
	if background {
		base = 10
	}
	switch c.kind {
	case colorDefault:
		fmt.Fprintf(t.w, "\x1b[%dm", 39+base)
	case colorANSI:
		fmt.Fprintf(t.w, "\x1b[%dm", 30+base+int(c.index))
	case colorIndexed:
		fmt.Fprintf(t.w, "\x1b[%d;5;%dm", 38+base, c.index)
	case colorRGB:
		if t.mode == ColorModeTrueColor {
			fmt.Fprintf(t.w, "\x1b[%d;2;%d;%d;%dm", 38+base, c.r, c.g, c.b)
		} else {
			fmt.Fprintf(t.w, "\x1b[%d;5;%dm", 38+base, c.Indexed().index)
		}
	}
}

// Flush forces out any buffered output.
func (t *ANSITerminal) Flush() error {
	return t.w.Flush()
}

// Clear erases the screen and homes the cursor.
func (t *ANSITerminal) Clear() error {
	t.w.WriteString(csiClear)
	return t.w.Flush()
}

// SetCursorVisible shows or hides the cursor.
func (t *ANSITerminal) SetCursorVisible(visible bool) error {
	if visible {
		t.w.WriteString(csiCursorShow)
	} else {
		t.w.WriteString(csiCursorHide)
	}
	return t.w.Flush()
}

// EnterPrivateMode switches to the alternate screen buffer.
func (t *ANSITerminal) EnterPrivateMode() error {
	t.w.WriteString(csiAltScrEnter)
	return t.w.Flush()
}

// ExitPrivateMode returns to the normal screen buffer.
func (t *ANSITerminal) ExitPrivateMode() error {
	t.w.WriteString(csiAltScrExit)
	return t.w.Flush()
}

// Raw puts the underlying TTY into raw mode. Restore undoes it. Only valid
// when the terminal was constructed on a real TTY.
func (t *ANSITerminal) Raw() error {
	if t.file == nil || !term.IsTerminal(int(t.file.Fd())) {
		return errors.New("not a terminal")
	}
	saved, err := term.MakeRaw(int(t.file.Fd()))
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	t.saved = saved
	return nil
}

// Restore leaves raw mode. Safe to call when Raw was never entered.
func (t *ANSITerminal) Restore() error {
	if t.saved == nil {
		return nil
	}
	saved := t.saved
	t.saved = nil
	return term.Restore(int(t.file.Fd()), saved)
}
