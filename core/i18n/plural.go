// Package i18n provides the message catalog used by field cards, including
// zero/one/other plural selection independent of any localization runtime.
package i18n

// PluralKey selects one template out of a set of plural forms.
type PluralKey string

const (
	KeyZero  PluralKey = "zero"
	KeyOne   PluralKey = "one"
	KeyOther PluralKey = "other"
)

// PluralForms holds one template per plural key.
type PluralForms struct {
	Zero  string `yaml:"zero"`
	One   string `yaml:"one"`
	Other string `yaml:"other"`
}

// Pluralize returns the key of the form to use for count.
func Pluralize(count int64) PluralKey {
	switch count {
	case 0:
		return KeyZero
	case 1:
		return KeyOne
	default:
		return KeyOther
	}
}

// Select returns the template for count. Missing zero or one forms fall
// back to the other form.
func (f PluralForms) Select(count int64) string {
	switch Pluralize(count) {
	case KeyZero:
		if f.Zero != "" {
			return f.Zero
		}
	case KeyOne:
		if f.One != "" {
			return f.One
		}
	}
	return f.Other
}
