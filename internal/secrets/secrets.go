// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves API credentials from the environment and from a
// directory of plain-text files. In the directory each file is one secret: the
// filename is the key name and the trimmed contents are the value.
//
// Supported key files: gemini-api-key, cinii-app-id.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key file names understood by the CLI.
const (
	GeminiKeyFile  = "gemini-api-key"
	CiniiAppIDFile = "cinii-app-id"
)

// Environment variables consulted for the Gemini key, in order.
var GeminiEnvVars = []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}

// ErrMissingCredential is returned when no Gemini key can be found.
var ErrMissingCredential = errors.New("Gemini API key not found: set GEMINI_API_KEY (or GOOGLE_API_KEY), web_search.api_key, or .secrets/" + GeminiKeyFile)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", entry.Name(), err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[entry.Name()] = value
		}
	}
	return secrets, nil
}

// GeminiKey returns the Gemini API key and where it came from. The primary
// environment variable wins over the fallback one, then the configured value,
// then the secrets file.
func GeminiKey(getenv func(string) string, configured string, loaded map[string]string) (key, origin string, err error) {
	for _, name := range GeminiEnvVars {
		if v := strings.TrimSpace(getenv(name)); v != "" {
			return v, name, nil
		}
	}
	if v := strings.TrimSpace(configured); v != "" {
		return v, "config", nil
	}
	if v, ok := loaded[GeminiKeyFile]; ok {
		return v, ".secrets/" + GeminiKeyFile, nil
	}
	return "", "", ErrMissingCredential
}

// Redact masks all but the last four characters of a secret for display.
func Redact(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
