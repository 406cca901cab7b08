package repo

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Source is one file below a version directory. Its derived facts (relative
// paths, section set, URL) are computed once at read time and reused for
// the rest of the run.
type Source struct {
	// Path is the absolute file path.
	Path string

	// RelToVersion is the path relative to the version directory, with
	// forward slashes and no leading "./".
	RelToVersion string

	// RelToRepo is the path relative to the repository root.
	RelToRepo string

	// Sections are the UI sections this file is classified into, in the
	// fixed section order.
	Sections []ActionListSection

	// URL is the rendered download URL.
	URL string

	// File is the path recorded in the index: relative to the category's
	// nesting depth, through the package identifier.
	File string
}

// ReadSource derives all per-file facts for one source file.
func ReadSource(path string, v *Version, pkg *Package, r *Repository, matcher *Matcher) (*Source, error) {
	relToVersion, err := relSlash(v.Path, path)
	if err != nil {
		return nil, err
	}
	relToRepo, err := relSlash(r.Path, path)
	if err != nil {
		return nil, err
	}

	url, err := r.SourceURL(relToRepo)
	if err != nil {
		return nil, fmt.Errorf("rendering URL for %s: %w", path, err)
	}

	// The client resolves the file attribute against the category folder,
	// so ascend one level per category component before descending into the
	// package's install folder.
	file := strings.Repeat("../", pkg.CategoryDepth()) + pkg.Identifier + "/" + relToVersion

	return &Source{
		Path:         path,
		RelToVersion: relToVersion,
		RelToRepo:    relToRepo,
		Sections:     matcher.Match(relToVersion),
		URL:          url,
		File:         file,
	}, nil
}

// relSlash returns target relative to base with forward-slash separators.
func relSlash(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", fmt.Errorf("relativizing %s against %s: %w", target, base, err)
	}
	return filepath.ToSlash(rel), nil
}
