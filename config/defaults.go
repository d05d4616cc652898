package config

import (
	"github.com/spf13/viper"
)

const (
	defaultBarWidth      = 0 // derived from the card width
	defaultLabelWidth    = 14
	defaultLinesToSample = 1000
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.width", 0)
	v.SetDefault("display.bar_width", defaultBarWidth)
	v.SetDefault("display.label_width", defaultLabelWidth)
	v.SetDefault("display.locale_file", "")
	v.SetDefault("display.timezone", "local")

	// Storage defaults
	v.SetDefault("storage.path", "") // Empty means use platform default
	v.SetDefault("storage.retention_days", 0)

	// Elasticsearch defaults
	v.SetDefault("elasticsearch.addresses", []string{"http://localhost:9200"})
	v.SetDefault("elasticsearch.username", "")
	v.SetDefault("elasticsearch.password", "")
	v.SetDefault("elasticsearch.api_key", "")
	v.SetDefault("elasticsearch.lines_to_sample", defaultLinesToSample)
}
