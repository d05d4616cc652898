package fieldstats

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DocumentFormat is the serialization of a stats document.
type DocumentFormat string

const (
	FormatJSON DocumentFormat = "json"
	FormatYAML DocumentFormat = "yaml"
)

// Document is a set of field records, either listed directly or derived from
// a raw structure analysis.
type Document struct {
	Fields              []Record `json:"fields" yaml:"fields"`
	NumMessagesAnalyzed int64    `json:"num_messages_analyzed,omitempty" yaml:"num_messages_analyzed,omitempty"`
}

// rawDocument accepts both document shapes in one pass.
type rawDocument struct {
	Fields          []Record `json:"fields" yaml:"fields"`
	StructureResult `yaml:",inline"`
}

// FormatFromPath picks a document format from the file extension.
func FormatFromPath(path string) DocumentFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// DecodeFile reads a stats document from disk.
func DecodeFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats document: %w", err)
	}
	defer f.Close()

	return Decode(f, FormatFromPath(path))
}

// Decode reads a stats document. Documents with a top-level "fields" list are
// taken as-is; otherwise the content is treated as a structure analysis and
// converted with FromStructure.
func Decode(r io.Reader, format DocumentFormat) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read stats document: %w", err)
	}

	var raw rawDocument
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML stats document: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON stats document: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format: %s", format)
	}

	if raw.Fields != nil {
		return &Document{
			Fields:              raw.Fields,
			NumMessagesAnalyzed: raw.NumMessagesAnalyzed,
		}, nil
	}

	if raw.FieldStats == nil && raw.Mappings.Properties == nil {
		return nil, fmt.Errorf("stats document has neither fields nor field_stats")
	}

	return &Document{
		Fields:              FromStructure(&raw.StructureResult),
		NumMessagesAnalyzed: raw.NumMessagesAnalyzed,
	}, nil
}

// Filter returns the records whose names are listed, in the order given.
// Unknown names are skipped. An empty list returns all records.
func (d *Document) Filter(names []string) []Record {
	if len(names) == 0 {
		return d.Fields
	}

	byName := make(map[string]Record, len(d.Fields))
	for _, rec := range d.Fields {
		byName[rec.Name] = rec
	}

	out := make([]Record, 0, len(names))
	for _, name := range names {
		if rec, ok := byName[name]; ok {
			out = append(out, rec)
		}
	}
	return out
}
