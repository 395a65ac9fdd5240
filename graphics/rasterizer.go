package graphics

import "github.com/mobwell/lanterna/terminal"

// The rasterizer decomposes geometry into an ordered sequence of cell
// positions. It owns no terminal state: each cell is handed to a plot
// callback, and the first plot error aborts the remaining cells.

type plotFunc func(terminal.Position) error

// rasterizeLine enumerates a Bresenham line from one position to the other,
// endpoints included. Horizontal lines come out in column order so
// consecutive cells share a row.
func rasterizeLine(from, to terminal.Position, plot plotFunc) error {
	dx := abs(to.Column - from.Column)
	dy := -abs(to.Row - from.Row)
	sx := 1
	if from.Column > to.Column {
		sx = -1
	}
	sy := 1
	if from.Row > to.Row {
		sy = -1
	}
	e := dx + dy
	p := from
	for {
		if err := plot(p); err != nil {
			return err
		}
		if p == to {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			p.Column += sx
		}
		if e2 <= dx {
			e += dx
			p.Row += sy
		}
	}
}

// rasterizeFilledTriangle enumerates every cell inside the triangle,
// row-major, edges and vertices included.
func rasterizeFilledTriangle(a, b, c terminal.Position, plot plotFunc) error {
	minCol := min3(a.Column, b.Column, c.Column)
	maxCol := max3(a.Column, b.Column, c.Column)
	minRow := min3(a.Row, b.Row, c.Row)
	maxRow := max3(a.Row, b.Row, c.Row)

	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			p := terminal.Position{Column: col, Row: row}
			if !insideTriangle(p, a, b, c) {
				continue
			}
			if err := plot(p); err != nil {
				return err
			}
		}
	}
	return nil
}

// rasterizeFilledRectangle enumerates the rectangle row-major.
func rasterizeFilledRectangle(topLeft terminal.Position, size terminal.Size, plot plotFunc) error {
	for row := 0; row < size.Rows; row++ {
		for col := 0; col < size.Columns; col++ {
			if err := plot(topLeft.WithRelativeColumn(col).WithRelativeRow(row)); err != nil {
				return err
			}
		}
	}
	return nil
}

// insideTriangle tests cell containment with edge cross-products; cells on
// an edge count as inside.
func insideTriangle(p, a, b, c terminal.Position) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func cross(p, a, b terminal.Position) int {
	return (p.Column-b.Column)*(a.Row-b.Row) - (a.Column-b.Column)*(p.Row-b.Row)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func min3(a, b, c int) int {
	return min(a, min(b, c))
}

func max3(a, b, c int) int {
	return max(a, max(b, c))
}
