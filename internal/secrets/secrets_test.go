// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T) string
		want   map[string]string
		errMsg string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "  AIza_abc123  \n")
				writeFile(t, dir, "cinii-app-id", "app_xyz789")
				return dir
			},
			want: map[string]string{
				"gemini-api-key": "AIza_abc123",
				"cinii-app-id":   "app_xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				return dir
			},
			want: map[string]string{
				"gemini-api-key": "valid-key",
			},
		},
		{
			name: "skips dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, ".gitkeep", "")
				writeFile(t, dir, ".hidden-key", "secret")
				writeFile(t, dir, "cinii-app-id", "app_real")
				return dir
			},
			want: map[string]string{
				"cinii-app-id": "app_real",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "gemini-api-key", "AIza_123")
				require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))
				return dir
			},
			want: map[string]string{
				"gemini-api-key": "AIza_123",
			},
		},
		{
			name: "returns empty map for empty directory",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read 0o000 files")
	}
	dir := t.TempDir()
	writeFile(t, dir, "good-key", "value123")

	// Create a file then remove read permission.
	badPath := filepath.Join(dir, "bad-key")
	require.NoError(t, os.WriteFile(badPath, []byte("secret"), 0o000))
	t.Cleanup(func() { os.Chmod(badPath, 0o644) })

	got, err := Load(dir)
	require.NoError(t, err)
	// The good file should still be returned; the bad file is skipped with a warning.
	assert.Equal(t, "value123", got["good-key"])
	_, hasBad := got["bad-key"]
	assert.False(t, hasBad, "unreadable file should not appear in result")
}

func TestGeminiKey(t *testing.T) {
	loaded := map[string]string{GeminiKeyFile: "from-file"}

	tests := []struct {
		name       string
		env        map[string]string
		configured string
		loaded     map[string]string
		wantKey    string
		wantOrigin string
	}{
		{
			name:       "primary env var wins",
			env:        map[string]string{"GEMINI_API_KEY": "primary", "GOOGLE_API_KEY": "secondary"},
			configured: "configured",
			loaded:     loaded,
			wantKey:    "primary",
			wantOrigin: "GEMINI_API_KEY",
		},
		{
			name:       "falls back to secondary env var",
			env:        map[string]string{"GOOGLE_API_KEY": "secondary"},
			loaded:     loaded,
			wantKey:    "secondary",
			wantOrigin: "GOOGLE_API_KEY",
		},
		{
			name:       "blank env var is ignored",
			env:        map[string]string{"GEMINI_API_KEY": "   "},
			configured: "configured",
			wantKey:    "configured",
			wantOrigin: "config",
		},
		{
			name:       "secrets file last",
			loaded:     loaded,
			wantKey:    "from-file",
			wantOrigin: ".secrets/gemini-api-key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			key, origin, err := GeminiKey(getenv, tt.configured, tt.loaded)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantOrigin, origin)
		})
	}
}

func TestGeminiKeyMissing(t *testing.T) {
	getenv := func(string) string { return "" }
	_, _, err := GeminiKey(getenv, "", map[string]string{"cinii-app-id": "x"})
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "", Redact(""))
	assert.Equal(t, "****", Redact("abc"))
	assert.Equal(t, "******7890", Redact("1234567890"))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
