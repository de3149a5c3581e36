package models

// Grid is a sheet's cells as rows of strings, anchored at A1.
// Rows may have different lengths; trailing empty cells are often absent.
type Grid [][]string

// Cell returns the value at (row, col), or "" when out of range.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	r := g[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// Row returns row i, or nil when out of range.
func (g Grid) Row(i int) []string {
	if i < 0 || i >= len(g) {
		return nil
	}
	return g[i]
}

// Sheet is one named tab of a workbook.
type Sheet struct {
	// Name is the sheet tab name.
	Name string
	// Grid holds the sheet's cell text.
	Grid Grid
}
