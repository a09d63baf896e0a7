package report

// ResultSet is an ordered collection of result records grouped by target.
// Records keep their insertion order so downstream export is deterministic.
type ResultSet struct {
	Records []Record
}

// NewResultSet creates an empty ResultSet ready for recording.
func NewResultSet() *ResultSet {
	return &ResultSet{Records: make([]Record, 0)}
}

// Add appends a record.
func (rs *ResultSet) Add(r Record) {
	rs.Records = append(rs.Records, r)
}

// ByTarget returns the records for one target in insertion order.
func (rs *ResultSet) ByTarget(targetID string) []Record {
	var out []Record
	for _, r := range rs.Records {
		if r.TargetID == targetID {
			out = append(out, r)
		}
	}
	return out
}

// Targets returns the distinct target identifiers in first-seen order.
func (rs *ResultSet) Targets() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range rs.Records {
		if !seen[r.TargetID] {
			seen[r.TargetID] = true
			out = append(out, r.TargetID)
		}
	}
	return out
}
