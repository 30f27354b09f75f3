package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pleasure-utils/models"
)

func project(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func run(t *testing.T, root string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := NewRootCommand(models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{
		"--root", root,
		"--log-level", "error",
		"--env-prefix", "PLEASURE_CMD_TEST",
	}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

const apiConfig = "api:\n  port: 3000\n  host: localhost\n"

// ── version ──────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	out, err := run(t, t.TempDir(), "version")
	require.NoError(t, err)

	assert.Equal(t, "Build version: 1.2.3\nBuild date: 2026-10-01\nBuild commit: abc123\n", out)
}

func TestPrintBuildInfo_Development(t *testing.T) {
	var buf bytes.Buffer
	printBuildInfo(&buf, models.NewAppBuildInfo("", "", ""))

	assert.Equal(t, "Build version: dev\nBuild date: N/A\nBuild commit: N/A\n", buf.String())
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, "N/A", valueOrNA(" "))
	assert.Equal(t, "v1", valueOrNA("v1"))
}

// ── config show ──────────────────────────────────────────────────────────────

func TestConfigShow_YAML(t *testing.T) {
	root := project(t, map[string]string{"pleasure.config.yml": apiConfig})

	out, err := run(t, root, "config", "show", "api")
	require.NoError(t, err)
	assert.Equal(t, "host: localhost\nport: 3000\n", out)
}

func TestConfigShow_WholeProject(t *testing.T) {
	root := project(t, map[string]string{"pleasure.config.yml": apiConfig})

	out, err := run(t, root, "config", "show")
	require.NoError(t, err)
	assert.Equal(t, "api:\n    host: localhost\n    port: 3000\n", out)
}

func TestConfigShow_JSONWithExtraArgs(t *testing.T) {
	root := project(t, map[string]string{"pleasure.config.yml": apiConfig})

	out, err := run(t, root, "config", "show", "api", "-o", "json", "--", "--port=4000", "--verbose")
	require.NoError(t, err)
	assert.JSONEq(t, `{"host": "localhost", "port": "4000", "verbose": true}`, out)
}

func TestConfigShow_ExtraArgsWithoutScope(t *testing.T) {
	root := project(t, map[string]string{"pleasure.config.yml": apiConfig})

	out, err := run(t, root, "config", "show", "-o", "json", "--", "--debug")
	require.NoError(t, err)
	assert.JSONEq(t, `{"api": {"host": "localhost", "port": 3000}, "debug": true}`, out)
}

func TestConfigShow_Text(t *testing.T) {
	root := project(t, map[string]string{"pleasure.config.yml": apiConfig})

	out, err := run(t, root, "config", "show", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "api.host")
	assert.Contains(t, out, "localhost")
	assert.Contains(t, out, "api.port")
	assert.Contains(t, out, "3000")
}

func TestConfigShow_Environment(t *testing.T) {
	root := project(t, map[string]string{"pleasure.config.yml": apiConfig})
	t.Setenv("PLEASURE_CMD_TEST_PORT", "8080")

	out, err := run(t, root, "config", "show", "api", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"host": "localhost", "port": "8080"}`, out)
}

func TestConfigShow_Middleware(t *testing.T) {
	root := project(t, map[string]string{
		"pleasure.config.yml": apiConfig,
		"local.yml":           "port: 4000\n",
	})
	mw := "api=" + filepath.Join(root, "local.yml")

	out, err := run(t, root, "config", "show", "api", "-o", "json", "--middleware", mw)
	require.NoError(t, err)
	assert.JSONEq(t, `{"host": "localhost", "port": 4000}`, out)

	out, err = run(t, root, "config", "show", "api", "-o", "json", "--middleware", mw, "--no-middleware")
	require.NoError(t, err)
	assert.JSONEq(t, `{"host": "localhost", "port": 3000}`, out)
}

func TestConfigShow_Errors(t *testing.T) {
	root := project(t, map[string]string{"pleasure.config.yml": apiConfig})

	tests := map[string][]string{
		"unknown output":   {"config", "show", "-o", "xml"},
		"two scopes":       {"config", "show", "api", "ui"},
		"bad middleware":   {"config", "show", "--middleware", "nope"},
		"bad scope":        {"config", "show", "api..port"},
		"unknown log flag": {"--log-level", "loud", "config", "show"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, root, args...)
			assert.Error(t, err)
		})
	}
}

// ── root ─────────────────────────────────────────────────────────────────────

func TestRootPath(t *testing.T) {
	root := project(t, nil)

	out, err := run(t, root, "root", "src", "components")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "src", "components")+"\n", out)
}

// ── md build ─────────────────────────────────────────────────────────────────

func TestMarkdownBuild_Out(t *testing.T) {
	root := project(t, map[string]string{
		"docs/index.md": "# Index\n\n@import(part.md)\n",
		"docs/part.md":  "part",
	})
	site := filepath.Join(root, "site")

	out, err := run(t, root, "md", "build", filepath.Join(root, "docs"), "--out", site, "--format", "html")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(site, "index.html"))

	data, err := os.ReadFile(filepath.Join(site, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "<p>part</p>")
}

func TestMarkdownBuild_Stdout(t *testing.T) {
	root := project(t, map[string]string{
		"docs/index.md":    "@import(part.md)",
		"docs/part.md":     "part",
		"docs/skip/one.md": "skipped",
	})

	out, err := run(t, root, "md", "build", filepath.Join(root, "docs"), "--exclude", "skip")
	require.NoError(t, err)
	assert.Equal(t, "part\npart\n", out)
}

func TestMarkdownBuild_Errors(t *testing.T) {
	root := project(t, map[string]string{"docs/index.md": "x"})

	_, err := run(t, root, "md", "build")
	assert.Error(t, err)

	_, err = run(t, root, "md", "build", filepath.Join(root, "missing"))
	assert.Error(t, err)

	_, err = run(t, root, "md", "build", filepath.Join(root, "docs"), "--format", "pdf")
	assert.Error(t, err)
}

// ── package ──────────────────────────────────────────────────────────────────

func TestPackage(t *testing.T) {
	root := project(t, map[string]string{
		"package.json": `{"name": "demo", "scripts": {"build": "pleasure md build docs"}}`,
	})

	out, err := run(t, root, "package", "name")
	require.NoError(t, err)
	assert.Equal(t, "demo\n", out)

	out, err = run(t, root, "package", "scripts")
	require.NoError(t, err)
	assert.JSONEq(t, `{"scripts": {"build": "pleasure md build docs"}}`, out)

	out, err = run(t, root, "package")
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "demo", "scripts": {"build": "pleasure md build docs"}}`, out)

	_, err = run(t, root, "package", "version")
	assert.Error(t, err)
}

// ── id ───────────────────────────────────────────────────────────────────────

func TestID(t *testing.T) {
	out, err := run(t, t.TempDir(), "id", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Regexp(t, `^[A-Z]\d{13}$`, line)
	}
}
