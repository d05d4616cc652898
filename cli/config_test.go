package cli_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/safedep/fieldcard/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ShowRedactsSecrets(t *testing.T) {
	env := newTestEnv(t)
	env.configPath = env.writeFile("secret.yaml", `display:
  colors: never
elasticsearch:
  username: elastic
  password: hunter2
`)

	stdout, _, err := env.run("config", "show", "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "hunter2")

	var view struct {
		Location string         `json:"location"`
		Values   map[string]any `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Equal(t, env.configPath, view.Location)

	es, ok := view.Values["elasticsearch"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "********", es["password"])
	assert.Equal(t, "elastic", es["username"])
	assert.Equal(t, "", es["api_key"])

	stdout, _, err = env.run("config", "get", "elasticsearch.password")
	require.NoError(t, err)
	assert.Equal(t, "********\n", stdout)
}

func TestConfig_Get(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
		exitCode int
	}{
		{name: "from file", key: "display.colors", expected: "never\n"},
		{name: "default", key: "display.label_width", expected: "14\n"},
		{name: "unknown key", key: "display.nope", exitCode: cli.ExitConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			stdout, _, err := env.run("config", "get", tt.key)
			if tt.exitCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.exitCode, exitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		expected string
		exitCode int
		errMsg   string
	}{
		{name: "integer", key: "display.width", value: "60", expected: "60\n"},
		{name: "enum", key: "display.colors", value: "always", expected: "always\n"},
		{name: "invalid enum", key: "display.colors", value: "purple", exitCode: cli.ExitConfig, errMsg: "failed to set config"},
		{name: "negative width", key: "display.bar_width", value: "-1", exitCode: cli.ExitConfig, errMsg: "failed to set config"},
		{name: "negative retention", key: "storage.retention_days", value: "-7", exitCode: cli.ExitConfig, errMsg: "failed to set config"},
		{name: "unknown key", key: "display.nope", value: "1", exitCode: cli.ExitConfig, errMsg: "unknown config key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)

			stdout, _, err := env.run("config", "set", tt.key, tt.value)
			if tt.exitCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.exitCode, exitCode(err))
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout, "Set "+tt.key+" = "+tt.value)

			stdout, _, err = env.run("config", "get", tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestConfig_SetInvalidKeepsFile(t *testing.T) {
	env := newTestEnv(t)
	before, err := os.ReadFile(env.configPath)
	require.NoError(t, err)

	_, _, err = env.run("config", "set", "elasticsearch.lines_to_sample", "0")
	require.Error(t, err)

	after, err := os.ReadFile(env.configPath)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestConfig_Reset(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "reset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration reset to defaults")

	_, err = os.Stat(env.configPath)
	assert.True(t, os.IsNotExist(err))

	stdout, _, err = env.run("config", "get", "display.colors")
	require.NoError(t, err)
	assert.Equal(t, "auto\n", stdout)
}
