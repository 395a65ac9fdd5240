package terminal

import "fmt"

// Position identifies one cell on the terminal grid by column and row,
// both zero-indexed. It is an immutable value; derive new positions with
// the With methods.
type Position struct {
	Column int
	Row    int
}

// TopLeft is the origin position, column 0 and row 0.
var TopLeft = Position{}

// WithColumn returns a copy of the position with the column replaced.
func (p Position) WithColumn(column int) Position {
	return Position{Column: column, Row: p.Row}
}

// WithRow returns a copy of the position with the row replaced.
func (p Position) WithRow(row int) Position {
	return Position{Column: p.Column, Row: row}
}

// WithRelativeColumn returns a copy of the position shifted by delta columns.
func (p Position) WithRelativeColumn(delta int) Position {
	return Position{Column: p.Column + delta, Row: p.Row}
}

// WithRelativeRow returns a copy of the position shifted by delta rows.
func (p Position) WithRelativeRow(delta int) Position {
	return Position{Column: p.Column, Row: p.Row + delta}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d:%d]", p.Column, p.Row)
}
