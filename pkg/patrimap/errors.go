package patrimap

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoSheet indicates the requested worksheet is not in the workbook.
var ErrNoSheet = errors.New("worksheet not found")

// ErrMissingColumn indicates a required header is absent from the sheet.
var ErrMissingColumn = errors.New("missing column")

// LoadError represents an error while loading one of the input workbooks.
type LoadError struct {
	Path      string
	SheetName string
	Component string // "open", "sheet", "ownership", "properties"
	Err       error
}

func (e *LoadError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("load error in %s (%s): %v", e.Path, e.Component, e.Err)
	}
	return fmt.Sprintf("load error in %s sheet %q (%s): %v", e.Path, e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheetName, component string, err error) *LoadError {
	return &LoadError{
		Path:      path,
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
