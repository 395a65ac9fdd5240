package terminal

import "fmt"

// Size holds terminal dimensions in character cells.
type Size struct {
	Columns int
	Rows    int
}

// Contains reports whether the position falls inside a grid of this size.
func (s Size) Contains(p Position) bool {
	return p.Column >= 0 && p.Column < s.Columns && p.Row >= 0 && p.Row < s.Rows
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Columns, s.Rows)
}
