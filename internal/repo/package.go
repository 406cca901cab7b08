package repo

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/repkg/cli/internal/errors"
	"github.com/repkg/cli/internal/output"
)

// Package is one package directory under the repository root.
type Package struct {
	// Path is the absolute package directory.
	Path string

	// Identifier is the unique package name, also used as the install
	// folder name by the client.
	Identifier string

	// Name is the descriptive display name.
	Name string

	// Category is the normalized grouping path (forward slashes). It is
	// display-only and never ascends above the repository root.
	Category string

	// Type is the package kind.
	Type PackageType

	// Author is the effective author (package override or repository
	// author).
	Author string

	// Desc is the optional package description (RTF), empty if absent.
	Desc string

	// Entrypoints is the package-level entrypoint map, nil when absent.
	Entrypoints Entrypoints

	// Versions are the discovered versions, ordered by directory name.
	Versions []*Version
}

// ReadPackage loads and validates one package directory.
func ReadPackage(dir string, r *Repository) (*Package, error) {
	configPath := filepath.Join(dir, PackageConfigFile)

	var cfg PackageConfig
	if err := loadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	if cfg.Category == "" {
		return nil, missingField(configPath, "category")
	}
	if cfg.Type == "" {
		return nil, missingField(configPath, "type")
	}

	kind, err := ParsePackageType(cfg.Type)
	if err != nil {
		return nil, &oerrors.DetailError{
			Type:     "invalid config",
			Message:  err.Error(),
			Location: configPath,
			Cause:    err,
		}
	}

	category, err := normalizeCategory(cfg.Category, configPath)
	if err != nil {
		return nil, err
	}

	identifier := cfg.Identifier
	if identifier == "" {
		identifier = filepath.Base(dir)
	}
	name := cfg.Name
	if name == "" {
		name = identifier
	}
	author := cfg.Author
	if author == "" {
		author = r.Author
	}

	entrypoints, err := ParseEntrypoints(cfg.Entrypoints, configPath)
	if err != nil {
		return nil, err
	}
	if kind != TypeScript && entrypoints.HasPatterns() {
		return nil, &oerrors.DetailError{
			Type:     "invalid config",
			Message:  fmt.Sprintf("entrypoints can only be defined in packages with type = %q", TypeScript),
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	desc, _, err := r.readSidecar(dir, "README")
	if err != nil {
		return nil, err
	}

	pkg := &Package{
		Path:        dir,
		Identifier:  identifier,
		Name:        name,
		Category:    category,
		Type:        kind,
		Author:      author,
		Desc:        desc,
		Entrypoints: entrypoints,
	}

	versionDirs, err := discoverChildren(dir, VersionConfigFile)
	if err != nil {
		return nil, err
	}
	for _, versionDir := range versionDirs {
		version, err := ReadVersion(versionDir, pkg, r)
		if err != nil {
			if IsRecoverable(err) {
				output.Warn("skipping unreadable version directory", "path", versionDir, "error", err)
				continue
			}
			return nil, err
		}
		pkg.Versions = append(pkg.Versions, version)
	}

	return pkg, nil
}

// CategoryDepth is the number of path components in the category, used to
// compute how many parent-directory segments a source file path needs.
func (p *Package) CategoryDepth() int {
	if p.Category == "." {
		return 0
	}
	return strings.Count(p.Category, "/") + 1
}

// normalizeCategory cleans the category path and rejects anything that
// would escape the repository root.
func normalizeCategory(category, location string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(category, "\\", "/"))

	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", &oerrors.DetailError{
			Type:     "invalid config",
			Message:  fmt.Sprintf("category %q escapes the repository root", category),
			Location: location,
			Cause:    oerrors.ErrValidation,
		}
	}
	return cleaned, nil
}

// readSidecar reads an optional RTF/Markdown sidecar file for an entity
// directory.
func (r *Repository) readSidecar(dir, base string) (string, bool, error) {
	return r.richtext.Read(filepath.Join(dir, base))
}
