package timetable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/parser"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook reads every sheet of the workbook at path, in tab order.
func LoadWorkbook(path string) ([]models.Sheet, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make([]models.Sheet, 0, len(sheetList))
	for _, sheetName := range sheetList {
		grid, err := parser.ReadGrid(f, sheetName)
		if err != nil {
			return nil, NewSheetError(sheetName, err)
		}
		sheets = append(sheets, models.Sheet{Name: sheetName, Grid: grid})
	}
	return sheets, nil
}
