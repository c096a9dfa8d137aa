package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// chdirTemp moves the test into a fresh directory and returns it.
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(originalWD)) })

	return tempDir
}

func executeInit(t *testing.T) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.PersistentPreRun = nil
	cmd.AddCommand(newInitCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init"})

	return cmd.Execute()
}

func TestInitCmd_WritesDefaults(t *testing.T) {
	tempDir := chdirTemp(t)

	require.NoError(t, executeInit(t))

	contents, err := os.ReadFile(filepath.Join(tempDir, configFileName))
	require.NoError(t, err)

	var written struct {
		Version int `yaml:"version"`
		Store   struct {
			Path string `yaml:"path"`
		} `yaml:"store"`
		Serve struct {
			Root string `yaml:"root"`
		} `yaml:"serve"`
		Run struct {
			Workers int `yaml:"workers"`
		} `yaml:"run"`
		Log struct {
			Filename string `yaml:"filename"`
		} `yaml:"log"`
	}
	require.NoError(t, yaml.Unmarshal(contents, &written))

	assert.Equal(t, currentConfigVersion, written.Version)
	assert.Equal(t, defaultStorePath, written.Store.Path)
	assert.Equal(t, defaultServeRoot, written.Serve.Root)
	assert.Equal(t, defaultRunWorkers, written.Run.Workers)
	assert.Equal(t, defaultLogFilename, written.Log.Filename)
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := chdirTemp(t)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("store:\n  path: kept.db\n"), 0o644))

	err := executeInit(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write config file")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "store:\n  path: kept.db\n", string(contents))
}
