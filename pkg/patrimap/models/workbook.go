package models

import "time"

// Snapshot is the set of in-memory tables produced by one load.
// It is never mutated after construction.
type Snapshot struct {
	// Ownership is the reshaped ownership table.
	Ownership []OwnershipRecord `json:"ownership"`
	// Properties is the property table, as read.
	Properties []PropertyRecord `json:"properties"`
	// LoadedAt is the time the load completed.
	LoadedAt time.Time `json:"loaded_at"`
}
