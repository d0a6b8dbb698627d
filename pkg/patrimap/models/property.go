package models

// PropertyRecord is one row of the property sheet.
type PropertyRecord struct {
	// Row is the source row (1-based).
	Row int `json:"row"`
	// Company links the property to a company by exact name.
	Company string `json:"company"`
	// PropertyName is the display name of the property.
	PropertyName string `json:"property_name"`
	// RawShare is the untouched "% PART NO IMOVEL" cell value.
	RawShare any `json:"raw_share"`
	// Address is the full address.
	Address string `json:"address"`
}
