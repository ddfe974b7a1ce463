package engine

// ============================================================================
// ENGINE TYPES — Generic Tabular Aggregation
// ============================================================================
// The engine is domain-agnostic: it sees rows as string dimensions plus
// nullable numeric measures, and has ZERO external dependencies.
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
// A measure that failed numeric coercion upstream is simply absent from the
// Measures map — aggregates skip it instead of treating it as zero.
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// Filters define which records to include.
// Keys are dimension names. Values are allowed values.
// OR within a dimension, AND across dimensions. Empty = all.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions"`
}

// ByDimension builds a single-dimension filter.
func ByDimension(dimension string, values ...string) Filters {
	return Filters{Dimensions: map[string][]string{dimension: values}}
}

// HasFilter returns true if a specific dimension filter is set.
func (f Filters) HasFilter(dimension string) bool {
	if f.Dimensions == nil {
		return false
	}
	vals, ok := f.Dimensions[dimension]
	return ok && len(vals) > 0
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	if f.Dimensions == nil {
		return true
	}
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ============================================================================
// GROUP — Intermediate computation result
// ============================================================================

// Group represents a grouped/aggregated result.
type Group struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Value     float64    `json:"value"`
	Count     int        `json:"count"` // rows in the group, valid measure or not
	SubGroups []Group    `json:"subGroups,omitempty"`
	View      RecordView `json:"-"` // sub-view for records in this group (zero-copy)
}
