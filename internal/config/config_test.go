package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elioetibr/haml-go/pkg/format"
)

func TestLoadReturnsDefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysYamlFile(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".haml-go.yaml"), []byte("format: xhtml1strict\nindent: 4\n"), 0o644)
	require.NoError(t, err)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "xhtml1strict", cfg.Format)
	assert.Equal(t, 4, cfg.Indent)
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, format.HTML5, ResolveFormat("html5"))
	assert.Equal(t, format.HTML4, ResolveFormat("html4"))
	assert.Equal(t, format.XHTML1Strict, ResolveFormat("xhtml1strict"))
	assert.Equal(t, format.XHTML1Transitional, ResolveFormat("xhtml"))
	assert.Equal(t, format.HTML5, ResolveFormat("nonsense"))
}
