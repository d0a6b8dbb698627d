package models

// Dashboard is the Owner → Company → Property tree shown to users.
type Dashboard struct {
	// AllOwners lists every owner, sorted, for the filter widget.
	AllOwners []string `json:"all_owners"`
	// Selected lists the owners kept by the filter, sorted.
	Selected []string `json:"selected"`
	// Owners holds one card per selected owner.
	Owners []OwnerView `json:"owners"`
}

// OwnerView groups the companies held by one owner.
type OwnerView struct {
	Owner     string        `json:"owner"`
	Companies []CompanyView `json:"companies"`
}

// CompanyView is one company held by an owner.
type CompanyView struct {
	Company    string  `json:"company"`
	Percentage float64 `json:"percentage"`
	// HasProperties is false when no property row names this company.
	HasProperties bool           `json:"has_properties"`
	Properties    []PropertyView `json:"properties,omitempty"`
}

// PropertyView is a property linked to a company.
type PropertyView struct {
	Name string `json:"name"`
	// Share is the company's canonical share in the property (0–100).
	Share   float64 `json:"share"`
	Address string  `json:"address"`
}
