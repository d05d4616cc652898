package i18n

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// MessageID identifies a message in the catalog.
type MessageID string

const (
	MsgDocumentsCount MessageID = "field_card.documents_count"
	MsgDistinctCount  MessageID = "field_card.distinct_count"
	MsgMinTitle       MessageID = "field_card.min_title"
	MsgMedianTitle    MessageID = "field_card.median_title"
	MsgMaxTitle       MessageID = "field_card.max_title"
	MsgTopValues      MessageID = "field_card.top_values"
	MsgNoInformation  MessageID = "field_card.no_information"
)

// Message is either a plain template or a set of plural forms.
type Message struct {
	Text   string       `yaml:"text,omitempty"`
	Plural *PluralForms `yaml:"plural,omitempty"`
}

// Catalog resolves message IDs and type labels to display text. Templates
// use {name} placeholders.
type Catalog struct {
	messages   map[MessageID]Message
	typeLabels map[string]string
}

// catalogFile is the on-disk shape of a catalog override.
type catalogFile struct {
	Messages   map[MessageID]Message `yaml:"messages"`
	TypeLabels map[string]string     `yaml:"type_labels"`
}

// Default returns the built-in English catalog.
func Default() *Catalog {
	c := &Catalog{
		messages:   make(map[MessageID]Message, len(defaultMessages)),
		typeLabels: make(map[string]string, len(defaultTypeLabels)),
	}
	for id, m := range defaultMessages {
		c.messages[id] = m
	}
	for t, l := range defaultTypeLabels {
		c.typeLabels[t] = l
	}
	return c
}

// LoadFile returns the default catalog overlaid with the messages and type
// labels of the YAML file at path. An empty path returns the default.
func LoadFile(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read message catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse message catalog: %w", err)
	}

	for id, m := range f.Messages {
		if m.Text == "" && m.Plural == nil {
			return nil, fmt.Errorf("message %q has neither text nor plural forms", id)
		}
		if m.Plural != nil && m.Plural.Other == "" {
			return nil, fmt.Errorf("message %q has plural forms without an other form", id)
		}
		c.messages[id] = m
	}
	for t, l := range f.TypeLabels {
		c.typeLabels[t] = l
	}

	return c, nil
}

// Text returns the message for id with args interpolated. Unknown IDs render
// as the ID itself so that missing translations stay visible.
func (c *Catalog) Text(id MessageID, args map[string]string) string {
	m, ok := c.messages[id]
	if !ok {
		return string(id)
	}

	tmpl := m.Text
	if tmpl == "" && m.Plural != nil {
		tmpl = m.Plural.Other
	}
	return interpolate(tmpl, args)
}

// Plural returns the plural form of id selected by count. The count is
// available to the template as {count}, formatted with thousands separators.
func (c *Catalog) Plural(id MessageID, count int64, args map[string]string) string {
	m, ok := c.messages[id]
	if !ok {
		return string(id)
	}

	tmpl := m.Text
	if m.Plural != nil {
		tmpl = m.Plural.Select(count)
	}

	all := make(map[string]string, len(args)+1)
	for k, v := range args {
		all[k] = v
	}
	all["count"] = humanize.Comma(count)

	return interpolate(tmpl, all)
}

// TypeLabel returns the accessible label of a display type, or an empty
// string when the type is unknown to the catalog.
func (c *Catalog) TypeLabel(displayType string) string {
	return c.typeLabels[displayType]
}

// FormatFloat renders v without trailing zeros.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func interpolate(tmpl string, args map[string]string) string {
	if len(args) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	pairs := make([]string, 0, len(args)*2)
	for k, v := range args {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}
