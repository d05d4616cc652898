package card

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/safedep/fieldcard/core/i18n"
)

// Collaborators are the display helpers a card consumes but does not define.
type Collaborators struct {
	// Icon maps a display type to its glyph.
	Icon func(displayType string) Icon
	// DisplayValue formats a min, median or max value.
	DisplayValue func(v any) string
	// TypeLabel returns the accessible label of a display type, or "".
	TypeLabel func(displayType string) string
	Messages  *i18n.Catalog
}

// DefaultCollaborators wires the built-in icon set and value formatter to the
// given catalog. Dates are shown in loc; nil means local time.
func DefaultCollaborators(messages *i18n.Catalog, loc *time.Location) Collaborators {
	if messages == nil {
		messages = i18n.Default()
	}
	if loc == nil {
		loc = time.Local
	}

	return Collaborators{
		Icon: FieldTypeIcon,
		DisplayValue: func(v any) string {
			return DisplayValue(v, loc)
		},
		TypeLabel: messages.TypeLabel,
		Messages:  messages,
	}
}

var fieldTypeIcons = map[string]Icon{
	"boolean":   {Name: "boolean", Glyph: "◐", Color: "#9B59B6"},
	"date":      {Name: "date", Glyph: "◷", Color: "#1ABC9C"},
	"geo_point": {Name: "geo_point", Glyph: "⌖", Color: "#E67E22"},
	"ip":        {Name: "ip", Glyph: "⌘", Color: "#E91E63"},
	"keyword":   {Name: "keyword", Glyph: "t", Color: "#5B9BD5"},
	"number":    {Name: "number", Glyph: "#", Color: "#6BCB77"},
	"text":      {Name: "text", Glyph: "¶", Color: "#F0AD4E"},
}

// FieldTypeIcon returns the icon of a display type. Unknown types share a
// question-mark glyph.
func FieldTypeIcon(displayType string) Icon {
	if icon, ok := fieldTypeIcons[displayType]; ok {
		return icon
	}
	return Icon{Name: "unknown", Glyph: "?", Color: "#7F8C8D"}
}

// DisplayValue formats a statistic value for display. Times are rendered in
// loc, numbers without trailing zeros, and structured values as compact JSON.
func DisplayValue(v any, loc *time.Location) string {
	switch t := v.(type) {
	case time.Time:
		if loc != nil {
			t = t.In(loc)
		}
		return t.Format("2006-01-02 15:04:05")
	case []any, map[string]any:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(data)
	default:
		return primitiveText(v)
	}
}

// primitiveText renders whatever primitive representation v has.
func primitiveText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return i18n.FormatFloat(t)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}
