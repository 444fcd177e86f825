package client

import (
	"os"
	"path/filepath"
	"strings"
)

// tokenFile is where the CLI caches the bearer token between invocations,
// relative to the user's home directory.
const tokenFile = ".taskhub/token"

// LoadToken returns the cached token, or "" when none is stored.
func LoadToken() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(home, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// SaveToken caches the token for later invocations. The file is readable
// only by the owner.
func SaveToken(token string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	path := filepath.Join(home, tokenFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}
