package aggregate

// Comparison reports how one summary differs from a baseline. Ratio is nil
// when the baseline value is zero.
type Comparison struct {
	Difference float64  `json:"difference"`
	Ratio      *float64 `json:"ratio"`
}

// Compare returns the difference and ratio of a against the baseline b. It
// returns nil when either summary has no data, so callers can render "not
// enough data" instead of a misleading number.
func Compare(a, b Summary) *Comparison {
	if a.Count == 0 || b.Count == 0 || a.Value == nil || b.Value == nil {
		return nil
	}

	comparison := &Comparison{Difference: *a.Value - *b.Value}
	if *b.Value != 0 {
		ratio := *a.Value / *b.Value
		comparison.Ratio = &ratio
	}
	return comparison
}
