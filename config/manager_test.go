package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewManager_NoConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NotNil(t, mgr)

	assert.Equal(t, configFile, mgr.ConfigPath())
	assert.NotNil(t, mgr.AllSettings())
	assert.Equal(t, "auto", mgr.Get("display.colors"))
}

func TestNewManager_WithExistingConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
display:
  timezone: utc
storage:
  retention_days: 30
`), 0644))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	assert.Equal(t, "utc", mgr.Get("display.timezone"))
	assert.Equal(t, 30, mgr.Get("storage.retention_days"))
}

func TestManager_Get_ReturnsDefaults(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"display.colors", "auto"},
		{"display.width", 0},
		{"display.label_width", 14},
		{"display.timezone", "local"},
		{"storage.retention_days", 0},
		{"elasticsearch.addresses", []string{"http://localhost:9200"}},
		{"elasticsearch.lines_to_sample", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, mgr.Get(tt.key))
		})
	}
}

func TestManager_Set_CreatesCompleteConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	require.NoError(t, mgr.Set("display.colors", "never"))
	assert.Equal(t, "never", mgr.Get("display.colors"))

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var written map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &written))

	display, ok := written["display"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "never", display["colors"])
	assert.Equal(t, "local", display["timezone"])

	es, ok := written["elasticsearch"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1000, es["lines_to_sample"])

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, ColorNever, cfg.Display.Colors)
}

func TestManager_Set_PreservesExistingValues(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("storage:\n  retention_days: 7\n"), 0644))

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Set("display.width", 60))

	reloaded, err := NewManager(configFile)
	require.NoError(t, err)
	assert.Equal(t, 7, reloaded.Get("storage.retention_days"))
	assert.Equal(t, 60, reloaded.Get("display.width"))
}

func TestManager_Set_RejectsInvalidValue(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	err = mgr.Set("display.colors", "rainbow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid display.colors")
	assert.Equal(t, "auto", mgr.Get("display.colors"))

	_, statErr := os.Stat(configFile)
	assert.True(t, os.IsNotExist(statErr), "invalid values are not written")

	err = mgr.Set("display.width", "wide")
	assert.Error(t, err)

	err = mgr.Set("display.colors.shade", "dark")
	assert.Error(t, err)
}

func TestManager_Set_CreatesConfigDir(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Set("display.timezone", "utc"))

	_, err = os.Stat(configFile)
	assert.NoError(t, err)
}

func TestManager_Set_MultipleValues(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)

	require.NoError(t, mgr.Set("display.colors", "always"))
	require.NoError(t, mgr.Set("elasticsearch.addresses", []string{"https://es:9200"}))
	require.NoError(t, mgr.Set("storage.retention_days", 14))

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Display.Colors)
	assert.Equal(t, []string{"https://es:9200"}, cfg.Elasticsearch.Addresses)
	assert.Equal(t, 14, cfg.Storage.RetentionDays)
}

func TestManager_Reset_RemovesConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")

	mgr, err := NewManager(configFile)
	require.NoError(t, err)
	require.NoError(t, mgr.Set("display.colors", "never"))

	require.NoError(t, mgr.Reset())

	_, err = os.Stat(configFile)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, "auto", mgr.Get("display.colors"))
}

func TestManager_Reset_NonExistentFile(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.NoError(t, mgr.Reset())
}

func TestManager_HasKey(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.True(t, mgr.HasKey("display.colors"))
	assert.True(t, mgr.HasKey("elasticsearch.lines_to_sample"))
	assert.False(t, mgr.HasKey("nonexistent.key"))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"true", true},
		{"false", false},
		{"42", 42},
		{"-3", -3},
		{"utc", "utc"},
		{"[a, b, c]", []string{"a", "b", "c"}},
		{"[]", []string{}},
		{"1.5", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseValue(tt.input))
		})
	}
}
