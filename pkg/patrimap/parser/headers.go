package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// HeaderKey normalizes a header cell for lookup: NFC composition and
// trimmed surrounding whitespace, so "IMÓVEL" matches whichever way the
// accent was typed.
func HeaderKey(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// HeaderIndex maps each header key to its column index.
// When a name repeats, the first column wins.
func HeaderIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := HeaderKey(h)
		if key == "" {
			continue
		}
		if _, ok := idx[key]; !ok {
			idx[key] = i
		}
	}
	return idx
}

// MissingColumns returns the names in cols that idx does not contain.
func MissingColumns(idx map[string]int, cols ...string) []string {
	var missing []string
	for _, c := range cols {
		if _, ok := idx[HeaderKey(c)]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// firstDataRow returns the index of the first row with a non-empty cell,
// or -1 when the sheet is empty.
func firstDataRow(rows [][]string) int {
	for rowIdx, row := range rows {
		for _, cell := range row {
			if cell != "" {
				return rowIdx
			}
		}
	}
	return -1
}
