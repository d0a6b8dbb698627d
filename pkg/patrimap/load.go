package patrimap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ukaji3/patrimap-go/pkg/patrimap/models"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/parser"
	"github.com/ukaji3/patrimap-go/pkg/patrimap/reshape"
	"github.com/xuri/excelize/v2"
)

// Load reads both workbooks and reshapes the ownership matrix.
// Any failure aborts the whole load.
func Load(ctx context.Context, opts Options) (*models.Snapshot, error) {
	log := opts.logger()

	matrix, err := LoadOwnership(opts.OwnershipPath, opts.Sheet)
	if err != nil {
		return nil, err
	}
	log.Debug("ownership matrix loaded",
		"path", opts.OwnershipPath,
		"companies", len(matrix.Rows),
		"owner_columns", len(matrix.OwnerColumns))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	properties, err := LoadProperties(opts.PropertiesPath, opts.Sheet)
	if err != nil {
		return nil, err
	}
	log.Debug("property table loaded", "path", opts.PropertiesPath, "properties", len(properties))

	records := reshape.Reshape(matrix)
	log.Info("workbooks loaded",
		"ownership_records", len(records),
		"properties", len(properties))

	return &models.Snapshot{
		Ownership:  records,
		Properties: properties,
		LoadedAt:   time.Now(),
	}, nil
}

// LoadOwnership reads the ownership matrix. Every named column other than
// ColumnCompany is an owner column. Rows without a company are skipped.
func LoadOwnership(path, sheetName string) (models.Matrix, error) {
	sheet, err := readWorkbook(path, sheetName)
	if err != nil {
		return models.Matrix{}, err
	}

	idx := parser.HeaderIndex(sheet.Header)
	if missing := parser.MissingColumns(idx, ColumnCompany); len(missing) > 0 {
		return models.Matrix{}, NewLoadError(path, sheet.Name, "ownership",
			fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", ")))
	}
	companyCol := idx[parser.HeaderKey(ColumnCompany)]

	m := models.Matrix{CompanyColumn: sheet.Header[companyCol]}
	var ownerCols []int
	for i, h := range sheet.Header {
		if i == companyCol || parser.HeaderKey(h) == "" {
			continue
		}
		m.OwnerColumns = append(m.OwnerColumns, h)
		ownerCols = append(ownerCols, i)
	}

	for _, row := range sheet.Rows {
		company := row.Get(companyCol)
		if company == nil {
			continue
		}
		cells := make([]any, len(ownerCols))
		for i, col := range ownerCols {
			cells[i] = row.Get(col)
		}
		m.Rows = append(m.Rows, models.MatrixRow{
			Row:     row.R,
			Company: parser.Text(company),
			Cells:   cells,
		})
	}
	return m, nil
}

// LoadProperties reads the property table.
func LoadProperties(path, sheetName string) ([]models.PropertyRecord, error) {
	sheet, err := readWorkbook(path, sheetName)
	if err != nil {
		return nil, err
	}

	idx := parser.HeaderIndex(sheet.Header)
	if missing := parser.MissingColumns(idx, PropertyColumns...); len(missing) > 0 {
		return nil, NewLoadError(path, sheet.Name, "properties",
			fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", ")))
	}

	var (
		companyCol = idx[parser.HeaderKey(ColumnPropertyCompany)]
		shareCol   = idx[parser.HeaderKey(ColumnPropertyShare)]
		nameCol    = idx[parser.HeaderKey(ColumnPropertyName)]
		addressCol = idx[parser.HeaderKey(ColumnPropertyAddress)]
	)

	properties := make([]models.PropertyRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		properties = append(properties, models.PropertyRecord{
			Row:          row.R,
			Company:      parser.Text(row.Get(companyCol)),
			PropertyName: parser.Text(row.Get(nameCol)),
			RawShare:     row.Get(shareCol),
			Address:      parser.Text(row.Get(addressCol)),
		})
	}
	return properties, nil
}

// readWorkbook opens path and reads one worksheet: sheetName, or the
// first worksheet when sheetName is empty.
func readWorkbook(path, sheetName string) (models.Sheet, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.Sheet{}, NewLoadError(path, "", "open", ErrFileNotFound)
		}
		return models.Sheet{}, NewLoadError(path, "", "open", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Sheet{}, NewLoadError(path, "", "open", fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	defer f.Close()

	if sheetName == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.Sheet{}, NewLoadError(path, "", "sheet", ErrNoSheet)
		}
		sheetName = sheets[0]
	} else if i, err := f.GetSheetIndex(sheetName); err != nil || i < 0 {
		return models.Sheet{}, NewLoadError(path, sheetName, "sheet", ErrNoSheet)
	}

	sheet, err := parser.ReadSheet(f, sheetName)
	if err != nil {
		return models.Sheet{}, NewLoadError(path, sheetName, "sheet", err)
	}
	return sheet, nil
}
