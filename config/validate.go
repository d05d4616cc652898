package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	// fallbackCardWidth and minCardWidth mirror the card renderer.
	fallbackCardWidth = 48
	minCardWidth      = 24
	// labelReserve is the border, padding, percentage column and smallest
	// bar that share a row with the top value label.
	labelReserve = 16
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if !isValidTimezoneMode(cfg.Display.Timezone) {
		return fmt.Errorf("invalid display.timezone: %s (must be local or utc)", cfg.Display.Timezone)
	}

	if cfg.Display.Width < 0 {
		return fmt.Errorf("display.width must be non-negative")
	}
	if cfg.Display.BarWidth < 0 {
		return fmt.Errorf("display.bar_width must be non-negative")
	}
	if cfg.Display.LabelWidth < 0 {
		return fmt.Errorf("display.label_width must be non-negative")
	}
	if limit := maxLabelWidth(cfg.Display.Width); cfg.Display.LabelWidth > limit {
		return fmt.Errorf("display.label_width must be at most %d for a card width of %d", limit, cfg.Display.Width)
	}

	if cfg.Display.LocaleFile != "" {
		if _, err := os.Stat(cfg.Display.LocaleFile); err != nil {
			return fmt.Errorf("display.locale_file: %w", err)
		}
	}

	if cfg.Storage.RetentionDays < 0 {
		return fmt.Errorf("storage.retention_days must be non-negative")
	}

	if len(cfg.Elasticsearch.Addresses) == 0 {
		return fmt.Errorf("elasticsearch.addresses must not be empty")
	}
	for i, addr := range cfg.Elasticsearch.Addresses {
		if !strings.HasPrefix(addr, "http://") && !strings.HasPrefix(addr, "https://") {
			return fmt.Errorf("elasticsearch.addresses[%d]: %q must be an http or https URL", i, addr)
		}
	}
	if cfg.Elasticsearch.LinesToSample <= 0 {
		return fmt.Errorf("elasticsearch.lines_to_sample must be positive")
	}
	if cfg.Elasticsearch.APIKey != "" && cfg.Elasticsearch.Username != "" {
		return fmt.Errorf("elasticsearch.api_key and elasticsearch.username are mutually exclusive")
	}

	return nil
}

// maxLabelWidth returns the widest top value label that still leaves room
// for a bar and percentage on a card of the given width.
func maxLabelWidth(cardWidth int) int {
	if cardWidth == 0 {
		cardWidth = fallbackCardWidth
	}
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	return cardWidth - labelReserve
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// isValidTimezoneMode returns true if the given mode is valid.
func isValidTimezoneMode(mode TimezoneMode) bool {
	switch mode {
	case TimezoneLocal, TimezoneUTC:
		return true
	default:
		return false
	}
}
