package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimulationTerminal(t *testing.T) (*ScreenTerminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(sim.Fini)
	sim.SetSize(20, 10)
	return NewScreenTerminal(sim), sim
}

func TestScreenTerminal_PutAdvancesCursor(t *testing.T) {
	term, sim := newSimulationTerminal(t)

	if err := term.SetCursorPosition(Position{Column: 2, Row: 3}); err != nil {
		t.Fatalf("SetCursorPosition: %v", err)
	}
	for _, r := range "ab" {
		if err := term.PutCharacter(r); err != nil {
			t.Fatalf("PutCharacter: %v", err)
		}
	}
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if r, _, _, _ := sim.GetContent(2, 3); r != 'a' {
		t.Fatalf("expected 'a' at first cell, got %q", r)
	}
	if r, _, _, _ := sim.GetContent(3, 3); r != 'b' {
		t.Fatalf("expected 'b' one column right, got %q", r)
	}
}

func TestScreenTerminal_PenMapsToStyle(t *testing.T) {
	term, sim := newSimulationTerminal(t)

	if err := term.SetForegroundColor(ColorRed); err != nil {
		t.Fatalf("SetForegroundColor: %v", err)
	}
	if err := term.SetBackgroundColor(NewRGBColor(0, 0, 255)); err != nil {
		t.Fatalf("SetBackgroundColor: %v", err)
	}
	if err := term.EnableSGR(SGRBold); err != nil {
		t.Fatalf("EnableSGR: %v", err)
	}
	if err := term.PutCharacter('x'); err != nil {
		t.Fatalf("PutCharacter: %v", err)
	}
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	_, _, style, _ := sim.GetContent(0, 0)
	fg, bg, attrs := style.Decompose()
	if fg != tcell.PaletteColor(1) {
		t.Fatalf("expected palette red foreground, got %v", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Fatalf("expected RGB blue background, got %v", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Fatalf("expected bold attribute, got %v", attrs)
	}
}

func TestScreenTerminal_ResetClearsPen(t *testing.T) {
	term, sim := newSimulationTerminal(t)

	if err := term.SetForegroundColor(ColorGreen); err != nil {
		t.Fatalf("SetForegroundColor: %v", err)
	}
	if err := term.ResetColorAndSGR(); err != nil {
		t.Fatalf("ResetColorAndSGR: %v", err)
	}
	if err := term.PutCharacter('y'); err != nil {
		t.Fatalf("PutCharacter: %v", err)
	}
	if err := term.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	_, _, style, _ := sim.GetContent(0, 0)
	if style != tcell.StyleDefault {
		t.Fatalf("expected default style after reset, got %v", style)
	}
}

func TestScreenTerminal_SizeTracksScreen(t *testing.T) {
	term, _ := newSimulationTerminal(t)
	size, err := term.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if size != (Size{Columns: 20, Rows: 10}) {
		t.Fatalf("expected 20x10, got %v", size)
	}
}
