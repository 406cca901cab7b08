package repo

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/repkg/cli/internal/errors"
)

// RepositoryConfig is the parsed shape of repository.toml.
type RepositoryConfig struct {
	// Identifier is the unique repository name. Defaults to the repository
	// directory's base name.
	Identifier string `toml:"identifier"`

	// Author is the default author for all packages.
	Author string `toml:"author"`

	// URLPattern is the download URL template. Recognized variables:
	// {relpath} and {git_commit}.
	URLPattern string `toml:"url_pattern"`
}

// PackageConfig is the parsed shape of package.toml. Enum and path fields
// stay primitive here; resolution and validation happen in ReadPackage.
type PackageConfig struct {
	// Name is the descriptive display name. Defaults to the identifier.
	Name string `toml:"name"`

	// Identifier is the unique package name. Defaults to the package
	// directory's base name.
	Identifier string `toml:"identifier"`

	// Category is a relative path used for grouping in the client UI. It
	// does not affect on-disk layout.
	Category string `toml:"category"`

	// Type is the package kind token.
	Type string `toml:"type"`

	// Author overrides the repository author when set.
	Author string `toml:"author"`

	// Entrypoints maps section tokens to glob pattern lists.
	Entrypoints map[string][]string `toml:"entrypoints"`
}

// VersionConfig is the parsed shape of version.toml. The version name comes
// from the directory name, not from config.
type VersionConfig struct {
	// Time is the publication timestamp.
	Time time.Time `toml:"time"`

	// Entrypoints, when present, fully replaces the package-level map for
	// all sources in this version.
	Entrypoints map[string][]string `toml:"entrypoints"`
}

// errUnparsable marks a child directory whose marker config could not be
// read or decoded. Such directories are logged and skipped rather than
// failing the whole run, so one corrupt directory cannot take down the
// index.
var errUnparsable = errors.New("unparsable config")

// IsRecoverable reports whether err only affects a single child directory.
func IsRecoverable(err error) bool {
	return errors.Is(err, errUnparsable)
}

// loadConfig decodes a marker config file into out. Read and decode
// failures are wrapped with errUnparsable.
func loadConfig(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", errUnparsable, path, err)
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", errUnparsable, path, err)
	}
	return nil
}

// missingField builds the fatal error for a required config field that is
// absent.
func missingField(path, field string) error {
	return &oerrors.DetailError{
		Type:     "invalid config",
		Message:  fmt.Sprintf("missing required field %q", field),
		Location: path,
		Cause:    oerrors.ErrValidation,
	}
}
