package timetable

import (
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/parser"
)

// Convert loads the workbook at path and transforms every sheet.
func Convert(path string, opts Options) (*models.ProcessedData, error) {
	sheets, err := LoadWorkbook(path)
	if err != nil {
		return nil, err
	}
	return Transform(sheets, opts), nil
}

// Transform builds the timetables of every class on every sheet.
// Sheets keep their workbook order in the result.
func Transform(sheets []models.Sheet, opts Options) *models.ProcessedData {
	t := opts.transformer()
	logger := opts.logger()

	data := models.NewProcessedData()
	for _, sheet := range sheets {
		if e := logger.Debug(); e.Enabled() {
			e.Str("sheet", sheet.Name).
				Str("bounds", parser.DataBounds(sheet.Grid)).
				Int("cells", parser.CountNonEmpty(sheet.Grid)).
				Msg("Transforming sheet")
		}

		data.Set(sheet.Name, t.TransformSheet(sheet.Name, sheet.Grid))
	}
	return data
}
