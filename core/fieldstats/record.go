// Package fieldstats defines the per-field statistics records rendered as cards
// and the pure derivations computed from them.
package fieldstats

// Record holds the statistics of a single field as produced by an upstream
// structure analysis. Optional values are nil when absent.
type Record struct {
	Name        string   `json:"name" yaml:"name"`
	Type        string   `json:"type" yaml:"type"`
	Format      string   `json:"format,omitempty" yaml:"format,omitempty"`
	Count       int64    `json:"count" yaml:"count"`
	Percent     float64  `json:"percent" yaml:"percent"`
	Cardinality int64    `json:"cardinality" yaml:"cardinality"`
	MinValue    any      `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MedianValue any      `json:"median_value,omitempty" yaml:"median_value,omitempty"`
	MaxValue    any      `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	MeanValue   any      `json:"mean_value,omitempty" yaml:"mean_value,omitempty"`
	Earliest    any      `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest      any      `json:"latest,omitempty" yaml:"latest,omitempty"`
	TopHits     []TopHit `json:"top_hits,omitempty" yaml:"top_hits,omitempty"`
}

// TopHit is one of the most frequent values of a field.
type TopHit struct {
	Value any   `json:"value" yaml:"value"`
	Count int64 `json:"count" yaml:"count"`
}

// HasMedian reports whether a median value is present. A median of zero is
// present; only a nil value is absent.
func (r *Record) HasMedian() bool {
	return r.MedianValue != nil
}

// HasTopHits reports whether the record carries at least one top value.
func (r *Record) HasTopHits() bool {
	return len(r.TopHits) > 0
}
