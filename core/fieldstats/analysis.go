package fieldstats

import (
	"encoding/json"
	"sort"
)

// StructureResult is the subset of a text structure analysis response that is
// needed to build field records.
type StructureResult struct {
	NumLinesAnalyzed    int64                    `json:"num_lines_analyzed" yaml:"num_lines_analyzed"`
	NumMessagesAnalyzed int64                    `json:"num_messages_analyzed" yaml:"num_messages_analyzed"`
	Format              string                   `json:"format,omitempty" yaml:"format,omitempty"`
	TimestampField      string                   `json:"timestamp_field,omitempty" yaml:"timestamp_field,omitempty"`
	Mappings            Mappings                 `json:"mappings" yaml:"mappings"`
	FieldStats          map[string]StructureStat `json:"field_stats" yaml:"field_stats"`
}

// Mappings holds the suggested index mappings of an analysis.
type Mappings struct {
	Properties map[string]Mapping `json:"properties" yaml:"properties"`
}

// Mapping is the suggested mapping of one field.
type Mapping struct {
	Type   string `json:"type" yaml:"type"`
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// StructureStat is the statistics block of one field in an analysis.
type StructureStat struct {
	Count       int64    `json:"count" yaml:"count"`
	Cardinality int64    `json:"cardinality" yaml:"cardinality"`
	MinValue    any      `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MaxValue    any      `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	MeanValue   any      `json:"mean_value,omitempty" yaml:"mean_value,omitempty"`
	MedianValue any      `json:"median_value,omitempty" yaml:"median_value,omitempty"`
	Earliest    any      `json:"earliest,omitempty" yaml:"earliest,omitempty"`
	Latest      any      `json:"latest,omitempty" yaml:"latest,omitempty"`
	TopHits     []TopHit `json:"top_hits,omitempty" yaml:"top_hits,omitempty"`
}

// FromStructure builds one record per field named in either the mappings or
// the field statistics, sorted by name. Fields that are only mapped get a
// zero count and render as empty cards.
func FromStructure(res *StructureResult) []Record {
	if res == nil {
		return nil
	}

	names := fieldNames(res)
	records := make([]Record, 0, len(names))

	for _, name := range names {
		rec := Record{Name: name, Type: TypeUnknown}

		m, mapped := res.Mappings.Properties[name]
		if mapped {
			rec.Type = m.Type
			rec.Format = m.Format
		} else if name == res.TimestampField {
			rec.Type = TypeDate
		}

		if st, ok := res.FieldStats[name]; ok {
			rec.Count = st.Count
			rec.Cardinality = st.Cardinality
			rec.MinValue = roundValue(st.MinValue)
			rec.MaxValue = roundValue(st.MaxValue)
			rec.MeanValue = roundValue(st.MeanValue)
			rec.MedianValue = roundValue(st.MedianValue)
			rec.Earliest = st.Earliest
			rec.Latest = st.Latest
			rec.TopHits = append([]TopHit(nil), st.TopHits...)
		}

		if res.NumMessagesAnalyzed > 0 {
			rec.Percent = RoundTo(float64(rec.Count)/float64(res.NumMessagesAnalyzed)*100, 2)
		}

		records = append(records, rec)
	}

	return records
}

func fieldNames(res *StructureResult) []string {
	seen := make(map[string]bool, len(res.FieldStats)+len(res.Mappings.Properties))
	names := make([]string, 0, len(seen))

	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for name := range res.FieldStats {
		add(name)
	}
	for name := range res.Mappings.Properties {
		add(name)
	}

	sort.Strings(names)
	return names
}

// roundValue rounds numeric values to two decimals and leaves everything else,
// including nil, untouched.
func roundValue(v any) any {
	switch n := v.(type) {
	case float64:
		return RoundTo(n, 2)
	case float32:
		return RoundTo(float64(n), 2)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return RoundTo(f, 2)
		}
		return v
	default:
		return v
	}
}
