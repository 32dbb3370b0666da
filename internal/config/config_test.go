package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyplab/fypml/pkg/fypml"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, "output_dir: out\nstrict: true\npretty_json: true\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.OutputDir)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.PrettyJSON)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "output_dir: [unclosed\n")
	_, err := Load(dir)
	assert.True(t, errors.Is(err, fypml.ErrInvalidConfig))
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "output_dir: from_yaml\nstrict: false\n")
	t.Setenv("FYPML_OUTPUT_DIR", "from_env")
	t.Setenv("FYPML_STRICT", "true")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.OutputDir)
	assert.True(t, cfg.Strict)
}

func TestLoad_BadEnvBool(t *testing.T) {
	dir := writeConfig(t, "")
	t.Setenv("FYPML_STRICT", "maybe")

	_, err := Load(dir)
	assert.True(t, errors.Is(err, fypml.ErrInvalidConfig))
}

func TestDefault_EnvOnly(t *testing.T) {
	t.Setenv("FYPML_PRETTY_JSON", "1")

	cfg, err := Default()
	require.NoError(t, err)
	assert.True(t, cfg.PrettyJSON)
}
