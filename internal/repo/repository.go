package repo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/repkg/cli/internal/errors"
	"github.com/repkg/cli/internal/gitrev"
	"github.com/repkg/cli/internal/output"
	"github.com/repkg/cli/internal/richtext"
)

// NotARepositoryError reports a directory without a repository.toml file.
type NotARepositoryError struct {
	Path string
}

// Error implements the error interface.
func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("the given path is not a repository (does not have a %s file): %s", RepositoryConfigFile, e.Path)
}

// Unwrap marks this as a not-found error.
func (e *NotARepositoryError) Unwrap() error {
	return oerrors.ErrNotFound
}

// Repository is the root of the resolved package graph. It is rebuilt from
// disk on every invocation; nothing in it is persisted.
type Repository struct {
	// Path is the absolute repository root directory.
	Path string

	// Identifier is the unique repository name.
	Identifier string

	// Author is the default author for all packages.
	Author string

	// Desc is the optional repository description (RTF), empty if absent.
	Desc string

	// Packages are the discovered packages, ordered by directory name.
	Packages []*Package

	urlPattern string
	revision   func(dir string) (string, error)
	richtext   *richtext.Converter

	// Both derived fields resolve at most once per run.
	commit    cell[string]
	effective cell[string]
}

// ReadOptions inject the external collaborators. Zero value uses the real
// pandoc and git implementations.
type ReadOptions struct {
	// RichText reads description/changelog sidecar files.
	RichText *richtext.Converter

	// Revision returns the source-control revision id for a directory.
	Revision func(dir string) (string, error)
}

func (o *ReadOptions) withDefaults() *ReadOptions {
	out := *o
	if out.RichText == nil {
		out.RichText = &richtext.Converter{}
	}
	if out.Revision == nil {
		out.Revision = gitrev.Head
	}
	return &out
}

// Read loads and validates the whole repository graph rooted at dir.
//
// Packages and versions whose marker config cannot be parsed are logged and
// skipped; structural and policy violations abort the read with an error
// naming the offending path.
func Read(dir string, opts ReadOptions) (*Repository, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	configPath := filepath.Join(abs, RepositoryConfigFile)
	if _, err := os.Stat(configPath); err != nil {
		return nil, &NotARepositoryError{Path: abs}
	}

	var cfg RepositoryConfig
	if err := loadConfig(configPath, &cfg); err != nil {
		// The root config is structural: a parse failure here is fatal.
		return nil, &oerrors.DetailError{
			Type:     "invalid config",
			Message:  err.Error(),
			Location: configPath,
			Cause:    oerrors.ErrValidation,
		}
	}
	if cfg.Author == "" {
		return nil, missingField(configPath, "author")
	}
	if cfg.URLPattern == "" {
		return nil, missingField(configPath, "url_pattern")
	}

	identifier := cfg.Identifier
	if identifier == "" {
		identifier = filepath.Base(abs)
	}

	resolved := opts.withDefaults()

	desc, _, err := resolved.RichText.Read(filepath.Join(abs, "README"))
	if err != nil {
		return nil, err
	}

	r := &Repository{
		Path:       abs,
		Identifier: identifier,
		Author:     cfg.Author,
		Desc:       desc,
		urlPattern: cfg.URLPattern,
		revision:   resolved.Revision,
		richtext:   resolved.RichText,
	}

	pkgDirs, err := discoverChildren(abs, PackageConfigFile)
	if err != nil {
		return nil, err
	}

	for _, pkgDir := range pkgDirs {
		pkg, err := ReadPackage(pkgDir, r)
		if err != nil {
			if IsRecoverable(err) {
				output.Warn("skipping unreadable package directory", "path", pkgDir, "error", err)
				continue
			}
			return nil, err
		}
		r.Packages = append(r.Packages, pkg)
	}

	return r, nil
}

// discoverChildren returns the subdirectories of dir that carry the given
// marker file, in directory order. Non-directories and directories without
// the marker are silently skipped.
func discoverChildren(dir, marker string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, err := os.Stat(filepath.Join(path, marker)); err != nil {
			continue
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// SourceURL renders the download URL for a repository-root-relative source
// path. The revision id, when the pattern uses {git_commit}, is fetched at
// most once per repository.
func (r *Repository) SourceURL(relpath string) (string, error) {
	pattern, err := r.effectivePattern()
	if err != nil {
		return "", err
	}
	return RenderSourceURL(pattern, relpath)
}

// effectivePattern is the URL pattern with repository-level variables
// substituted, computed once.
func (r *Repository) effectivePattern() (string, error) {
	return r.effective.get(func() (string, error) {
		pattern := r.urlPattern
		if strings.Contains(pattern, "{git_commit}") {
			commit, err := r.commit.get(func() (string, error) {
				return r.revision(r.Path)
			})
			if err != nil {
				return "", err
			}
			pattern = strings.ReplaceAll(pattern, "{git_commit}", commit)
		}
		return pattern, nil
	})
}
