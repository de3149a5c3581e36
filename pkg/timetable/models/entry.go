// Package models defines data structures for timetable conversion.
package models

// Color is a display hint attached to every timetable entry.
type Color string

const (
	// ColorDark marks header cells (day names and time labels).
	ColorDark Color = "dark"
	// ColorSuccess marks empty or unclassified slots.
	ColorSuccess Color = "success"
	// ColorDanger marks lecture sections.
	ColorDanger Color = "danger"
	// ColorPrimary marks tutorial sections.
	ColorPrimary Color = "primary"
	// ColorInfo marks combined (cross-listed) lecture sections.
	ColorInfo Color = "info"
)

// Entry is one cell of a class timetable.
type Entry struct {
	// Course is a day/time label, a processed course code, or empty.
	Course string `json:"course"`
	// Color is the display category for the cell.
	Color Color `json:"color"`
}

// DaysPerRow is the number of entries in a row: one label plus Monday to Friday.
const DaysPerRow = 6

// Row is one line of a class timetable.
type Row [DaysPerRow]Entry

// ClassTimetable is the weekly grid of one class section.
// Row 0 is the day header; the remaining rows are time slots.
type ClassTimetable []Row
