package parser

import (
	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
	"github.com/rs/zerolog"
)

// Transformer converts sheet grids into per-class timetables.
type Transformer struct {
	// Layout locates class headers and time slots.
	Layout Layout
	// Names resolves cleaned course codes to full names (may be nil).
	Names CourseNames
	// Logger receives warnings about suspicious sheet content.
	Logger zerolog.Logger
}

// NewTransformer returns a Transformer with the default layout and no logging.
func NewTransformer(names CourseNames) *Transformer {
	return &Transformer{
		Layout: DefaultLayout(),
		Names:  names,
		Logger: zerolog.Nop(),
	}
}

// TransformSheet builds the timetables of every class on a sheet. A class
// name seen twice keeps its first position but takes the later timetable.
func (t *Transformer) TransformSheet(sheetName string, grid models.Grid) models.SheetResult {
	result := models.NewSheetResult()
	for classIndex, className := range ExtractClasses(grid, t.Layout) {
		if result.Has(className) {
			t.Logger.Warn().
				Str("sheet", sheetName).
				Str("class", className).
				Int("column", t.Layout.FirstDayColumn+classIndex).
				Msg("Duplicate class name overwrites earlier timetable")
		}
		result.Set(className, t.ExtractTimetableForClass(grid, classIndex))
	}
	return result
}

// ExtractTimetableForClass builds the weekly grid of the class at classIndex.
// The result always has one header row plus one row per layout slot.
func (t *Transformer) ExtractTimetableForClass(grid models.Grid, classIndex int) models.ClassTimetable {
	timetable := make(models.ClassTimetable, 0, 1+t.Layout.SlotCount())
	timetable = append(timetable, headerRow())

	col := t.Layout.FirstDayColumn + classIndex
	for slot := 0; slot < t.Layout.SlotCount(); slot++ {
		row := t.Layout.FirstSlotRow + slot*t.Layout.SlotStride

		var r models.Row
		r[0] = models.Entry{Course: TimeSlotLabel(slot), Color: models.ColorDark}
		for day := 0; day < Weekdays; day++ {
			r[1+day] = Classify(grid.Cell(row, col+day), t.Names)
		}
		timetable = append(timetable, r)
	}
	return timetable
}

func headerRow() models.Row {
	var r models.Row
	for i, day := range DayHeaders {
		r[i] = models.Entry{Course: day, Color: models.ColorDark}
	}
	return r
}
