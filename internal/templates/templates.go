// Package templates provides embedded marker config templates and
// rendering.
package templates

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed configs/*.tmpl
var configsFS embed.FS

// Name identifies a config template.
type Name string

const (
	// Repository is the repository.toml template.
	Repository Name = "repository"

	// Package is the package.toml template.
	Package Name = "package"

	// Version is the version.toml template.
	Version Name = "version"
)

// ValidNames returns all valid template names.
func ValidNames() []string {
	return []string{string(Repository), string(Package), string(Version)}
}

// IsValidName checks if a template name is valid.
func IsValidName(name string) bool {
	switch Name(name) {
	case Repository, Package, Version:
		return true
	default:
		return false
	}
}

// RepositoryData fills the repository.toml template.
type RepositoryData struct {
	Identifier string
	Author     string
	URLPattern string
}

// DefaultRepositoryData returns placeholder values for a fresh repository.
func DefaultRepositoryData() RepositoryData {
	return RepositoryData{
		Identifier: "your-repository-identifier",
		Author:     "Your Name",
		URLPattern: "https://raw.githubusercontent.com/YOUR_USERNAME/YOUR_REPOSITORY/{git_commit}/{relpath}",
	}
}

// PackageData fills the package.toml template.
type PackageData struct {
	Category string
	Type     string
}

// DefaultPackageData returns placeholder values for a fresh package.
func DefaultPackageData() PackageData {
	return PackageData{
		Category: "Misc",
		Type:     "script",
	}
}

// VersionData fills the version.toml template.
type VersionData struct {
	// Time is the publication timestamp as an RFC 3339 string. It is
	// emitted as a bare TOML datetime.
	Time string
}

// Render renders the named template with the given data.
func Render(name Name, data any) (string, error) {
	if !IsValidName(string(name)) {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	content, err := configsFS.ReadFile(fmt.Sprintf("configs/%s.toml.tmpl", name))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(string(name)).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return b.String(), nil
}

// DefaultData returns the default data value for a template name.
func DefaultData(name Name) any {
	switch name {
	case Repository:
		return DefaultRepositoryData()
	case Package:
		return DefaultPackageData()
	case Version:
		return VersionData{Time: "2020-01-01T00:00:00Z"}
	default:
		return nil
	}
}
