package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "settings.json")

	// Durations in JSON may be strings ("500ms") or nanoseconds.
	jsonBody := `{
		"project": {
			"root": "/srv/project",
			"config_path": "/srv/project/conf.yml",
			"root_marker": "go.mod",
			"config_names": ["conf.yml"],
			"env_prefix": "APP"
		},
		"log": {"level": "debug", "format": "json"},
		"markdown": {
			"out": "dist",
			"format": "html",
			"exclude": ["vendor"],
			"lib_path": "_partials",
			"asset_dest": "assets"
		},
		"watch": {"debounce": "500ms"}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, Project{
		Root:        "/srv/project",
		ConfigPath:  "/srv/project/conf.yml",
		RootMarker:  "go.mod",
		ConfigNames: []string{"conf.yml"},
		EnvPrefix:   "APP",
	}, cfg.Project)
	assert.Equal(t, Log{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, Markdown{
		Out:       "dist",
		Format:    "html",
		Exclude:   []string{"vendor"},
		LibPath:   "_partials",
		AssetDest: "assets",
	}, cfg.Markdown)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	assert.Empty(t, cfg.SettingsFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"log": `), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json settings")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"watch": {"debounce": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	assert.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"watch": {"debounce": 1000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, cfg.Watch.Debounce)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
