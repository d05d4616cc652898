package fieldstats

// Field type tags produced by the mappings of a structure analysis.
const (
	TypeKeyword  = "keyword"
	TypeText     = "text"
	TypeDouble   = "double"
	TypeLong     = "long"
	TypeInteger  = "integer"
	TypeDate     = "date"
	TypeBoolean  = "boolean"
	TypeIP       = "ip"
	TypeGeoPoint = "geo_point"
	TypeUnknown  = "unknown"

	// TypeNumber is the display category for double and long fields.
	TypeNumber = "number"
)

// DisplayType coalesces the underlying type tag into the category used for
// icon and label lookup. Only double and long are folded into number.
func DisplayType(t string) string {
	switch t {
	case TypeDouble, TypeLong:
		return TypeNumber
	default:
		return t
	}
}
