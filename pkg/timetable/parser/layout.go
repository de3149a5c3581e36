// Package parser turns timetable sheet grids into class timetables.
package parser

// Layout describes where a timetable sheet keeps its data. All indexes are
// zero-based and relative to cell A1.
//
//	row 3      | SR NO | DAY | ... | CLASS-A | CLASS-B | CLASS-C | ...
//	row 6      |       |     |     | Mon(A)  | Tue(A)  | ...             <- slot 0
//	row 8      |       |     |     | ...                                <- slot 1
//	  ...
//	row 146    |       |     |     | ...                                <- slot 70
//
// The class found at position k of the header row (after filtering) reads its
// Monday to Friday cells from columns FirstDayColumn+k .. FirstDayColumn+k+4.
type Layout struct {
	// ClassRow is the header row holding class section names.
	ClassRow int
	// FirstSlotRow is the first time-slot row.
	FirstSlotRow int
	// LastSlotRow is the last time-slot row (inclusive).
	LastSlotRow int
	// SlotStride is the distance between consecutive time-slot rows.
	SlotStride int
	// FirstDayColumn is the Monday column of the first class.
	FirstDayColumn int
}

// DefaultLayout returns the layout of the department timetable workbook.
func DefaultLayout() Layout {
	return Layout{
		ClassRow:       3,
		FirstSlotRow:   6,
		LastSlotRow:    146,
		SlotStride:     2,
		FirstDayColumn: 4,
	}
}

// SlotCount returns the number of time-slot rows the layout yields.
func (l Layout) SlotCount() int {
	if l.SlotStride <= 0 || l.LastSlotRow < l.FirstSlotRow {
		return 0
	}
	return (l.LastSlotRow-l.FirstSlotRow)/l.SlotStride + 1
}

// Weekdays are the day columns of every timetable row after the label.
const Weekdays = 5

// DayHeaders is the fixed header row of every class timetable.
var DayHeaders = [...]string{
	"Timings",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
}

// TimeSlots are the teaching period start times. Slots past the end of the
// table get an empty label.
var TimeSlots = [...]string{
	"8:00am",
	"8:50am",
	"9:40am",
	"10:30am",
	"11:20am",
	"12:10pm",
	"1:00pm",
	"1:50pm",
	"2:40pm",
	"3:30pm",
	"4:20pm",
	"5:10pm",
	"6:00pm",
	"6:50pm",
}

// TimeSlotLabel returns the label of the slot at index, or "" if there is none.
func TimeSlotLabel(index int) string {
	if index < 0 || index >= len(TimeSlots) {
		return ""
	}
	return TimeSlots[index]
}
