package parser

import (
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
)

// nonClassHeaders are header-row labels that never name a class section.
// Matching is exact and case-sensitive, before trimming.
var nonClassHeaders = map[string]struct{}{
	"DAY":      {},
	"HOURS":    {},
	"SR NO":    {},
	"SR.NO":    {},
	"TUTORIAL": {},
}

// IsClassHeader reports whether a header-row cell names a class section.
func IsClassHeader(cell string) bool {
	if cell == "" {
		return false
	}
	_, skip := nonClassHeaders[cell]
	return !skip
}

// ExtractClasses returns the class names on the layout's class row, left to
// right. A missing row yields no classes.
func ExtractClasses(grid models.Grid, layout Layout) []string {
	var classes []string
	for _, cell := range grid.Row(layout.ClassRow) {
		if !IsClassHeader(cell) {
			continue
		}
		classes = append(classes, trimSpace(cell))
	}
	return classes
}
