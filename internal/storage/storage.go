package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/jitsuna/internal/storage/postgres"
	"github.com/julianstephens/jitsuna/internal/storage/sqlite"
)

var (
	_ Provider = (*sqlite.Store)(nil)
	_ Provider = (*postgres.Store)(nil)
)

// IsPostgres reports whether location names a PostgreSQL database rather
// than a SQLite file.
func IsPostgres(location string) bool {
	return postgres.IsConnURL(location) || strings.Contains(location, "host=")
}

// HasEmbeddedCredentials reports whether a PostgreSQL URL or key=value
// connection string carries a password.
func HasEmbeddedCredentials(connStr string) bool {
	if !postgres.IsConnURL(connStr) {
		for _, part := range strings.Fields(connStr) {
			if strings.HasPrefix(strings.ToLower(part), "password=") {
				return true
			}
		}
		return false
	}

	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, isSet := u.User.Password()
	return isSet
}

// ExpandPath expands a leading "~" to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// New returns the provider for location: a PostgreSQL connection string or a
// SQLite file path. The returned store is not opened yet. Credential policy for
// connection strings is the caller's concern.
func New(location string) (Provider, error) {
	if IsPostgres(location) {
		return postgres.New(location), nil
	}

	path, err := ExpandPath(location)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}
