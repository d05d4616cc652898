package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/safedep/fieldcard/cli"
	"github.com/safedep/fieldcard/storage"
	"github.com/stretchr/testify/require"
)

const structureJSON = `{
  "num_lines_analyzed": 4,
  "num_messages_analyzed": 4,
  "format": "ndjson",
  "timestamp_field": "@timestamp",
  "mappings": {
    "properties": {
      "@timestamp": {"type": "date"},
      "bytes": {"type": "long"},
      "status": {"type": "keyword"}
    }
  },
  "field_stats": {
    "bytes": {
      "count": 4, "cardinality": 3,
      "min_value": 0, "max_value": 10.456, "mean_value": 3.114, "median_value": 2,
      "top_hits": [{"value": 0, "count": 2}, {"value": 2, "count": 1}, {"value": 10.456, "count": 1}]
    },
    "status": {
      "count": 4, "cardinality": 2,
      "top_hits": [{"value": "ok", "count": 3}, {"value": "err", "count": 1}]
    }
  }
}`

type testEnv struct {
	t          *testing.T
	tmpDir     string
	dbPath     string
	configPath string
	stdin      io.Reader
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, "")
}

func newTestEnvWithConfig(t *testing.T, extraYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "snapshots.db")
	configPath := filepath.Join(tmpDir, "config.yaml")

	configYAML := fmt.Sprintf(`storage:
  path: %s
display:
  colors: never
  timezone: utc
%s`, dbPath, extraYAML)

	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o600))

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		dbPath:     dbPath,
		configPath: configPath,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	if env.stdin != nil {
		rootCmd.SetIn(env.stdin)
	}

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

// writeFile writes content into the env's temp dir and returns its path.
func (env *testEnv) writeFile(name, content string) string {
	env.t.Helper()

	path := filepath.Join(env.tmpDir, name)
	require.NoError(env.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (env *testEnv) openStore() (storage.Store, func()) {
	env.t.Helper()

	store, err := storage.NewSQLiteStore(env.dbPath)
	require.NoError(env.t, err)
	require.NoError(env.t, store.Init(context.Background()))

	return store, func() {
		require.NoError(env.t, store.Close())
	}
}

// importSnapshot imports the structure fixture and returns the new ID.
func (env *testEnv) importSnapshot(name string) string {
	env.t.Helper()

	path := env.writeFile(name+".json", structureJSON)
	stdout, _, err := env.run("snapshot", "import", path, "--name", name)
	require.NoError(env.t, err)
	return strings.TrimSpace(stdout)
}

func exitCode(err error) int {
	var coder cli.ExitCoder
	if err == nil {
		return cli.ExitSuccess
	}
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return cli.ExitGeneral
}
