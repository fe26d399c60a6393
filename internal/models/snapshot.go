package models

// SnapshotVersion tags the backup document format.
const SnapshotVersion = "1.0"

// Snapshot is the full-database backup document. It only exists in transit:
// the export response body and the import request body. Invoices carry their
// items decoded, never the internal text encoding.
type Snapshot struct {
	Version   string       `json:"version"`
	Timestamp int64        `json:"timestamp"`
	Data      SnapshotData `json:"data"`
}

// SnapshotData holds the complete table contents. Each collection may be
// empty but must be present for an import to be accepted.
type SnapshotData struct {
	Customers []Customer `json:"customers"`
	Products  []Product  `json:"products"`
	Invoices  []Invoice  `json:"invoices"`
}

// RestoreStats reports how many rows an import restored per table.
type RestoreStats struct {
	Customers int `json:"customers"`
	Products  int `json:"products"`
	Invoices  int `json:"invoices"`
}
