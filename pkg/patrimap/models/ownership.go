package models

// Matrix is the wide ownership table: one row per company, one column per owner.
type Matrix struct {
	// CompanyColumn is the header of the identifying column.
	CompanyColumn string `json:"company_column"`
	// OwnerColumns are the remaining headers, in sheet order.
	OwnerColumns []string `json:"owner_columns"`
	// Rows holds one entry per company row.
	Rows []MatrixRow `json:"rows"`
}

// MatrixRow is one company row of the ownership matrix.
type MatrixRow struct {
	// Row is the source row (1-based).
	Row int `json:"row"`
	// Company is the company name, as found in the sheet.
	Company string `json:"company"`
	// Cells holds the raw values; Cells[i] belongs to OwnerColumns[i].
	Cells []any `json:"cells"`
}

// OwnershipRecord is one (company, owner, percentage) relationship.
type OwnershipRecord struct {
	Company    string  `json:"company"`
	Owner      string  `json:"owner"`
	Percentage float64 `json:"percentage"`
}
