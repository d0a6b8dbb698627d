// Package parser reads worksheets into typed rows.
package parser

import (
	"strconv"
	"strings"

	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a worksheet. The first row holding any value is the
// header; every later row holding a value becomes a CellRow whose cells
// line up with the header columns.
func ReadSheet(f *excelize.File, sheetName string) (models.Sheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Sheet{}, err
	}

	sheet := models.Sheet{Name: sheetName}
	headerIdx := firstDataRow(rows)
	if headerIdx < 0 {
		return sheet, nil
	}
	sheet.Header = append([]string(nil), rows[headerIdx]...)
	width := len(sheet.Header)

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		rowNum := rowIdx + 1 // 1-based row index
		if len(row) > width {
			width = len(row)
		}
		cells := make([]any, len(row))
		hasData := false

		for colIdx, raw := range row {
			if raw == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return models.Sheet{}, err
			}
			typ, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return models.Sheet{}, err
			}
			cells[colIdx] = typedValue(typ, raw)
			hasData = true
		}

		if hasData {
			sheet.Rows = append(sheet.Rows, models.CellRow{R: rowNum, C: cells})
		}
	}

	// Headers shorter than the data get blank names so indexes stay aligned.
	for len(sheet.Header) < width {
		sheet.Header = append(sheet.Header, "")
	}
	return sheet, nil
}

// typedValue converts the raw text of a cell according to its stored type.
func typedValue(typ excelize.CellType, raw string) any {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeDate, excelize.CellTypeError:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE")
	}
	return parseValue(raw)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}

// Text renders a cell value as the text used for names and joins.
func Text(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	}
	return ""
}
