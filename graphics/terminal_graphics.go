package graphics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/mobwell/lanterna/terminal"
)

// TerminalTextGraphics draws directly against a terminal sink.
//
// During a drawing operation the writer is the only actor touching the
// sink, so it caches the last graphic state and cursor position it asserted
// and skips the control sequences a run of identical cells would otherwise
// repeat. Between calls anything may have touched the sink, so the cache
// lives only for the extent of one (possibly nested) drawing operation and
// a standalone WriteCell asserts everything from scratch.
//
// The grid size is snapshotted once at construction and never refreshed;
// after a terminal resize Size returns stale dimensions. The sink's colors,
// modifiers and cursor position after any drawing call (failed or not) are
// unspecified: re-assert them before writing to the terminal outside this
// writer.
//
// The drawing operations are safe for concurrent use on one writer.
// Standalone WriteCell, SetPosition, and the pen setters are not; drive
// them from a single goroutine.
type TerminalTextGraphics struct {
	term terminal.Terminal
	size terminal.Size

	// mu serializes the drawing entry points; depth tracks nested batch
	// scopes, which the rasterizer enters without re-taking mu.
	mu    sync.Mutex
	depth atomic.Int32

	lastChar      terminal.Character
	lastCharValid bool
	lastPos       terminal.Position
	lastPosValid  bool

	position   terminal.Position
	foreground terminal.Color
	background terminal.Color
	modifiers  terminal.SGR
}

var _ TextGraphics = (*TerminalTextGraphics)(nil)

// NewTerminalTextGraphics snapshots the sink's size and returns a writer
// with an empty cache and a default pen at the origin.
func NewTerminalTextGraphics(term terminal.Terminal) (*TerminalTextGraphics, error) {
	size, err := term.Size()
	if err != nil {
		return nil, fmt.Errorf("query terminal size: %w", err)
	}
	return &TerminalTextGraphics{
		term:       term,
		size:       size,
		foreground: terminal.ColorDefault,
		background: terminal.ColorDefault,
	}, nil
}

// Size returns the snapshot captured at construction. It does not re-query
// the sink.
func (g *TerminalTextGraphics) Size() terminal.Size {
	return g.size
}

// SetPosition moves the pen and immediately repositions the terminal
// cursor, independent of any drawing operation.
func (g *TerminalTextGraphics) SetPosition(pos terminal.Position) error {
	g.position = pos
	if err := g.term.SetCursorPosition(pos); err != nil {
		return fmt.Errorf("move cursor: %w", err)
	}
	return nil
}

// Position returns the current pen position.
func (g *TerminalTextGraphics) Position() terminal.Position {
	return g.position
}

// SetForegroundColor updates the pen foreground.
func (g *TerminalTextGraphics) SetForegroundColor(c terminal.Color) TextGraphics {
	g.foreground = c
	return g
}

// SetBackgroundColor updates the pen background.
func (g *TerminalTextGraphics) SetBackgroundColor(c terminal.Color) TextGraphics {
	g.background = c
	return g
}

// EnableModifiers adds modifiers to the pen.
func (g *TerminalTextGraphics) EnableModifiers(m terminal.SGR) TextGraphics {
	g.modifiers = g.modifiers.With(m)
	return g
}

// DisableModifiers removes modifiers from the pen.
func (g *TerminalTextGraphics) DisableModifiers(m terminal.SGR) TextGraphics {
	g.modifiers = g.modifiers.Without(m)
	return g
}

// ClearModifiers removes every modifier from the pen.
func (g *TerminalTextGraphics) ClearModifiers() TextGraphics {
	g.modifiers = 0
	return g
}

// WriteCell places one styled glyph, emitting only the sink operations the
// desired state actually requires.
//
// Inside a drawing operation the cached style and position decide what can
// be skipped; a standalone call asserts cursor and full graphic state every
// time, because the sink may have been mutated since the previous call.
// Positions outside the size snapshot are ignored.
func (g *TerminalTextGraphics) WriteCell(pos terminal.Position, ch terminal.Character) error {
	if !g.size.Contains(pos) {
		return nil
	}
	if g.depth.Load() > 0 {
		if !g.lastCharValid || g.lastChar != ch {
			if err := g.applyGraphicState(ch); err != nil {
				return err
			}
			g.lastChar = ch
			g.lastCharValid = true
		}
		if !g.lastPosValid || g.lastPos != pos {
			if err := g.term.SetCursorPosition(pos); err != nil {
				return fmt.Errorf("move cursor: %w", err)
			}
		}
		if err := g.term.PutCharacter(ch.Rune); err != nil {
			return fmt.Errorf("put character: %w", err)
		}
		// Emitting a glyph advances the sink's cursor one column, so the
		// next cell on this row needs no explicit move.
		g.lastPos = pos.WithRelativeColumn(1)
		g.lastPosValid = true
		return nil
	}
	if err := g.term.SetCursorPosition(pos); err != nil {
		return fmt.Errorf("move cursor: %w", err)
	}
	if err := g.applyGraphicState(ch); err != nil {
		return err
	}
	if err := g.term.PutCharacter(ch.Rune); err != nil {
		return fmt.Errorf("put character: %w", err)
	}
	return nil
}

// applyGraphicState reasserts the full attribute set: reset, foreground,
// background, then each modifier.
func (g *TerminalTextGraphics) applyGraphicState(ch terminal.Character) error {
	if err := g.term.ResetColorAndSGR(); err != nil {
		return fmt.Errorf("reset graphic state: %w", err)
	}
	if err := g.term.SetForegroundColor(ch.Foreground); err != nil {
		return fmt.Errorf("set foreground: %w", err)
	}
	if err := g.term.SetBackgroundColor(ch.Background); err != nil {
		return fmt.Errorf("set background: %w", err)
	}
	for _, m := range terminal.AllSGRs {
		if !ch.Modifiers.Has(m) {
			continue
		}
		if err := g.term.EnableSGR(m); err != nil {
			return fmt.Errorf("enable %v: %w", m, err)
		}
	}
	return nil
}

// enterBatch opens a batch scope: from here until the matching leaveBatch
// the writer assumes it is the sole mutator of the sink.
func (g *TerminalTextGraphics) enterBatch() {
	g.depth.Add(1)
}

// leaveBatch closes a batch scope; when the outermost scope exits the
// cached assumptions are forgotten.
func (g *TerminalTextGraphics) leaveBatch() {
	if g.depth.Add(-1) == 0 {
		g.lastCharValid = false
		g.lastPosValid = false
	}
}

// DrawLine draws from the pen position to the end point and leaves the pen
// there.
func (g *TerminalTextGraphics) DrawLine(to terminal.Position, ch rune) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.lineScoped(g.position, to, g.plot(ch)); err != nil {
		return err
	}
	g.position = to
	return nil
}

// DrawTriangle outlines the triangle spanned by the pen position and the
// two given vertices.
func (g *TerminalTextGraphics) DrawTriangle(p1, p2 terminal.Position, ch rune) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enterBatch()
	defer g.leaveBatch()
	plot := g.plot(ch)
	if err := g.lineScoped(g.position, p1, plot); err != nil {
		return err
	}
	if err := g.lineScoped(p1, p2, plot); err != nil {
		return err
	}
	return g.lineScoped(p2, g.position, plot)
}

// FillTriangle fills the triangle spanned by the pen position and the two
// given vertices.
func (g *TerminalTextGraphics) FillTriangle(p1, p2 terminal.Position, ch rune) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enterBatch()
	defer g.leaveBatch()
	return rasterizeFilledTriangle(g.position, p1, p2, g.plot(ch))
}

// DrawRectangle outlines a rectangle anchored at the pen position.
func (g *TerminalTextGraphics) DrawRectangle(size terminal.Size, ch rune) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enterBatch()
	defer g.leaveBatch()
	if size.Columns <= 0 || size.Rows <= 0 {
		return nil
	}
	tl := g.position
	tr := tl.WithRelativeColumn(size.Columns - 1)
	bl := tl.WithRelativeRow(size.Rows - 1)
	br := tr.WithRelativeRow(size.Rows - 1)
	plot := g.plot(ch)
	switch {
	case size.Rows == 1:
		return g.lineScoped(tl, tr, plot)
	case size.Columns == 1:
		return g.lineScoped(tl, bl, plot)
	}
	if err := g.lineScoped(tl, tr, plot); err != nil {
		return err
	}
	if err := g.lineScoped(bl, br, plot); err != nil {
		return err
	}
	if size.Rows > 2 {
		if err := g.lineScoped(tl.WithRelativeRow(1), bl.WithRelativeRow(-1), plot); err != nil {
			return err
		}
		if err := g.lineScoped(tr.WithRelativeRow(1), br.WithRelativeRow(-1), plot); err != nil {
			return err
		}
	}
	return nil
}

// FillRectangle fills a rectangle anchored at the pen position.
func (g *TerminalTextGraphics) FillRectangle(size terminal.Size, ch rune) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enterBatch()
	defer g.leaveBatch()
	return rasterizeFilledRectangle(g.position, size, g.plot(ch))
}

// PutString writes the string left to right from the pen position and
// leaves the pen one cell past the last glyph. Cells beyond the right edge
// of the size snapshot are dropped.
func (g *TerminalTextGraphics) PutString(s string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.enterBatch()
	defer g.leaveBatch()
	start := g.position
	i := 0
	for _, r := range s {
		ch := g.pen(r)
		if err := g.WriteCell(start.WithRelativeColumn(i), ch); err != nil {
			return err
		}
		i++
	}
	g.position = start.WithRelativeColumn(i)
	return nil
}

// lineScoped rasterizes one line inside its own batch scope. Composed
// shapes call it repeatedly; the shared depth counter keeps the cache alive
// across the inner scopes until the outermost one exits.
func (g *TerminalTextGraphics) lineScoped(from, to terminal.Position, plot plotFunc) error {
	g.enterBatch()
	defer g.leaveBatch()
	return rasterizeLine(from, to, plot)
}

// plot returns the rasterizer callback writing cells with the current pen.
func (g *TerminalTextGraphics) plot(r rune) plotFunc {
	ch := g.pen(r)
	return func(pos terminal.Position) error {
		return g.WriteCell(pos, ch)
	}
}

func (g *TerminalTextGraphics) pen(r rune) terminal.Character {
	return terminal.Character{
		Rune:       r,
		Foreground: g.foreground,
		Background: g.background,
		Modifiers:  g.modifiers,
	}
}
