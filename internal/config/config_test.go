package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.ShouldExpand())
	assert.Equal(t, "teal", cfg.Theme.InputBorder)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
expand_nested: false
theme:
  tree_border: "#ff8800"
logging:
  file: /tmp/jviz.log
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.ShouldExpand())
	assert.Equal(t, "#ff8800", cfg.Theme.TreeBorder)
	assert.Equal(t, "teal", cfg.Theme.InputBorder, "unset fields keep defaults")
	assert.Equal(t, "/tmp/jviz.log", cfg.Logging.File)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
