// Package patrimap loads the ownership and property workbooks into the
// in-memory tables the dashboard is built from.
package patrimap

import "log/slog"

// Column headers the loader requires.
const (
	// ColumnCompany identifies the company in the ownership matrix.
	ColumnCompany = "Controladas"

	ColumnPropertyCompany = "EMPRESA"
	ColumnPropertyShare   = "% PART NO IMOVEL"
	ColumnPropertyName    = "NOME DO IMÓVEL"
	ColumnPropertyAddress = "ENDEREÇO COMPLETO"
)

// PropertyColumns lists the headers the property sheet must carry.
var PropertyColumns = []string{
	ColumnPropertyCompany,
	ColumnPropertyShare,
	ColumnPropertyName,
	ColumnPropertyAddress,
}

// Options configures a load.
type Options struct {
	// OwnershipPath is the ownership matrix workbook.
	OwnershipPath string
	// PropertiesPath is the property workbook.
	PropertiesPath string
	// Sheet names the worksheet to read in both workbooks.
	// If empty, the first worksheet is used.
	Sheet string
	// Logger receives load progress. If nil, slog.Default is used.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
