// Package models defines data structures for ownership and property tables.
package models

// CellRow represents a single worksheet row with typed cell values.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C holds one value per header column. A nil entry is an absent cell;
	// other entries are string, int64, float64 or bool.
	C []any `json:"c"`
}

// Get returns the value at column index i, or nil when the row is shorter.
func (r CellRow) Get(i int) any {
	if i < 0 || i >= len(r.C) {
		return nil
	}
	return r.C[i]
}
