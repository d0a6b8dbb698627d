// Package reshape turns the wide ownership matrix into ownership records.
package reshape

import (
	"regexp"
	"sort"

	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/parser"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/percent"
)

// OwnerLabel is the suffix carried by every owner column of the matrix.
const OwnerLabel = "% de Participação"

var ownerLabelRe = regexp.MustCompile(`\s*` + regexp.QuoteMeta(OwnerLabel) + `\s*`)

// StripOwnerLabel recovers the owner name from an owner column header.
func StripOwnerLabel(col string) string {
	return ownerLabelRe.ReplaceAllString(parser.HeaderKey(col), "")
}

// Reshape emits one record per non-empty (company, owner) cell, walking
// the matrix column by column. Absent cells, numeric zeros and cells that
// normalize to zero are dropped.
func Reshape(m models.Matrix) []models.OwnershipRecord {
	var out []models.OwnershipRecord
	for col, header := range m.OwnerColumns {
		owner := StripOwnerLabel(header)
		if owner == "" {
			continue
		}
		for _, row := range m.Rows {
			raw := cellAt(row.Cells, col)
			if isAbsentOrZero(raw) {
				continue
			}
			pct := percent.Ownership(raw)
			if pct == 0 {
				continue
			}
			out = append(out, models.OwnershipRecord{
				Company:    row.Company,
				Owner:      owner,
				Percentage: pct,
			})
		}
	}
	return out
}

func cellAt(cells []any, i int) any {
	if i < len(cells) {
		return cells[i]
	}
	return nil
}

func isAbsentOrZero(raw any) bool {
	switch v := raw.(type) {
	case nil:
		return true
	case int64:
		return v == 0
	case float64:
		return v == 0
	case int:
		return v == 0
	}
	return false
}

// Owners returns the distinct owners of records, sorted.
func Owners(records []models.OwnershipRecord) []string {
	owners := OwnersInOrder(records)
	sort.Strings(owners)
	return owners
}

// OwnersInOrder returns the distinct owners of records in first-appearance order.
func OwnersInOrder(records []models.OwnershipRecord) []string {
	seen := make(map[string]bool)
	var owners []string
	for _, r := range records {
		if seen[r.Owner] {
			continue
		}
		seen[r.Owner] = true
		owners = append(owners, r.Owner)
	}
	return owners
}
