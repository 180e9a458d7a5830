package entity

import "time"

// Tables whose row changes are published on the change feed.
const (
	TableVendorInquiries = "vendor_inquiries"
	TableVendorAnalytics = "vendor_analytics"
	TableVendorProfiles  = "vendor_profiles"
)

// ChangeKind is the kind of row-level change.
type ChangeKind string

const (
	ChangeInsert ChangeKind = "insert"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// ChangeEvent describes one row-level change. Records carry column values as
// strings so filters can compare them without knowing the table schema.
type ChangeEvent struct {
	Table      string            `json:"table"`
	Kind       ChangeKind        `json:"kind"`
	Record     map[string]string `json:"record,omitempty"`
	OldRecord  map[string]string `json:"oldRecord,omitempty"`
	OccurredAt time.Time         `json:"occurredAt"`
}

// ChangeFilter selects change events by table and column equality.
type ChangeFilter struct {
	Table  string
	Equals map[string]string
}

// Matches reports whether the event belongs to the filter's table and either
// the new or the old row satisfies every equality.
func (f ChangeFilter) Matches(event ChangeEvent) bool {
	if event.Table != f.Table {
		return false
	}

	return recordMatches(event.Record, f.Equals) || recordMatches(event.OldRecord, f.Equals)
}

func recordMatches(record, equals map[string]string) bool {
	if record == nil {
		return false
	}
	for column, want := range equals {
		if record[column] != want {
			return false
		}
	}

	return true
}
