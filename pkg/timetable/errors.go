package timetable

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// SheetError represents a failure while reading the rows of one sheet.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("read sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Err:       err,
	}
}
