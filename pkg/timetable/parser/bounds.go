package parser

import (
	"fmt"

	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// DataBounds returns the range (e.g. "A1:J147") enclosing every non-empty
// cell of grid, or "" when the grid has no data.
func DataBounds(grid models.Grid) string {
	minRow, maxRow, minCol, maxCol := findDataBounds(grid)
	if minRow < 0 {
		return ""
	}
	startCell, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return ""
	}
	endCell, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// CountNonEmpty counts cells of grid that hold any text.
func CountNonEmpty(grid models.Grid) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell != "" {
				count++
			}
		}
	}
	return count
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(grid models.Grid) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
