package models

// Sheet represents the typed content of one worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Header is the first row, as text.
	Header []string `json:"header"`
	// Rows contains the data rows below the header that hold at least one value.
	Rows []CellRow `json:"rows,omitempty"`
}
