package i18n

var defaultMessages = map[MessageID]Message{
	MsgDocumentsCount: {Plural: &PluralForms{
		Zero:  "{count} documents ({percent}%)",
		One:   "{count} document ({percent}%)",
		Other: "{count} documents ({percent}%)",
	}},
	MsgDistinctCount: {Plural: &PluralForms{
		Zero:  "{count} distinct values",
		One:   "{count} distinct value",
		Other: "{count} distinct values",
	}},
	MsgMinTitle:      {Text: "min"},
	MsgMedianTitle:   {Text: "median"},
	MsgMaxTitle:      {Text: "max"},
	MsgTopValues:     {Text: "top values"},
	MsgNoInformation: {Text: "No field information available"},
}

// Keyed by display type, so double and long share the number label.
var defaultTypeLabels = map[string]string{
	"boolean":   "boolean type",
	"date":      "date type",
	"geo_point": "geo point type",
	"ip":        "IP type",
	"keyword":   "keyword type",
	"number":    "number type",
	"text":      "text type",
	"unknown":   "unknown type",
}
