// Package types defines the Store interface, entity types, identifier
// allocation, and standard errors for the RepairDesk storage layer.
package types

import "errors"

// Config holds backend selection and parameters for constructing a Store.
type Config struct {
	Backend     string `json:"backend" yaml:"backend"`
	DataDir     string `json:"data_dir" yaml:"data_dir"`
	DatabaseURL string `json:"database_url" yaml:"database_url"`
}

// Supported backend names.
const (
	BackendPostgres = "postgres"
	BackendLocal    = "local"
)

// Config validation errors.
var (
	ErrBackendEmpty       = errors.New("backend must not be empty")
	ErrBackendUnknown     = errors.New("unknown backend")
	ErrDatabaseURLMissing = errors.New("postgres backend requires a database URL")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendPostgres: true,
	BackendLocal:    true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendPostgres && c.DatabaseURL == "" {
		return ErrDatabaseURLMissing
	}
	return nil
}
