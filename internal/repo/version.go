package repo

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	oerrors "github.com/repkg/cli/internal/errors"
	"github.com/repkg/cli/internal/output"
)

// Version is one version directory under a package.
type Version struct {
	// Path is the absolute version directory.
	Path string

	// Name is the version name, taken from the directory name.
	Name string

	// Author is the effective author for this version.
	Author string

	// Time is the publication timestamp.
	Time time.Time

	// Changelog is the optional changelog text (RTF), empty if absent.
	Changelog string

	// Entrypoints is the effective map: the version's own when present,
	// otherwise the package's. A version-level map fully replaces the
	// package-level one, it never merges.
	Entrypoints Entrypoints

	// Sources are all files below the version directory, ordered by path.
	Sources []*Source
}

// ReadVersion loads one version directory, discovers its sources, and
// enforces the entrypoint policy.
func ReadVersion(dir string, pkg *Package, r *Repository) (*Version, error) {
	configPath := filepath.Join(dir, VersionConfigFile)

	var cfg VersionConfig
	if err := loadConfig(configPath, &cfg); err != nil {
		return nil, err
	}
	if cfg.Time.IsZero() {
		return nil, missingField(configPath, "time")
	}

	own, err := ParseEntrypoints(cfg.Entrypoints, configPath)
	if err != nil {
		return nil, err
	}
	effective := own
	if effective == nil {
		effective = pkg.Entrypoints
	}

	matcher, err := CompileEntrypoints(effective, configPath)
	if err != nil {
		return nil, err
	}

	changelog, _, err := r.readSidecar(dir, "CHANGELOG")
	if err != nil {
		return nil, err
	}

	v := &Version{
		Path:        dir,
		Name:        filepath.Base(dir),
		Author:      pkg.Author,
		Time:        cfg.Time,
		Changelog:   changelog,
		Entrypoints: effective,
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			output.Warn("skipping unreadable entry while scanning sources", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		// The marker config describes the version, it is not content.
		if path == configPath {
			return nil
		}

		source, err := ReadSource(path, v, pkg, r, matcher)
		if err != nil {
			return err
		}
		v.Sources = append(v.Sources, source)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(v.Sources) == 0 {
		return nil, &oerrors.DetailError{
			Type:     "invalid version",
			Message:  "version contains no source files",
			Location: dir,
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := v.checkEntrypointPolicy(pkg, configPath); err != nil {
		return nil, err
	}

	return v, nil
}

// checkEntrypointPolicy enforces the per-version entrypoint rules after
// source discovery.
func (v *Version) checkEntrypointPolicy(pkg *Package, configPath string) error {
	if pkg.Type != TypeScript {
		// Package-level maps were rejected at package read; this catches a
		// version-level map on a non-script package.
		if v.Entrypoints.HasPatterns() {
			return &oerrors.DetailError{
				Type:     "invalid config",
				Message:  fmt.Sprintf("entrypoints can only be defined in packages with type = %q", TypeScript),
				Location: configPath,
				Cause:    oerrors.ErrValidation,
			}
		}
		return nil
	}

	if !v.Entrypoints.HasPatterns() {
		return &oerrors.DetailError{
			Type:     "invalid config",
			Message:  "script packages must have entrypoints defined",
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}

	for _, source := range v.Sources {
		if len(source.Sections) > 0 {
			return nil
		}
	}
	return &oerrors.DetailError{
		Type:     "invalid config",
		Message:  "entrypoints are defined, but no files were matched",
		Location: configPath,
		Cause:    oerrors.ErrValidation,
	}
}
