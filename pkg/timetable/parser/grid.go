package parser

import (
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
)

// ReadGrid reads every row of a sheet as formatted cell text.
// Missing cells within a row come back as empty strings.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return models.Grid(rows), nil
}
