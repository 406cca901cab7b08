package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	oerrors "github.com/repkg/cli/internal/errors"
	"github.com/repkg/cli/internal/output"
	"github.com/repkg/cli/internal/repo"
	"github.com/repkg/cli/internal/templates"
	"github.com/repkg/cli/internal/versions"
)

// NewPublishCmd creates the publish command.
func NewPublishCmd() *cobra.Command {
	var repoFlag string
	var identifierFlag string
	var newFlag bool

	c := &cobra.Command{
		Use:   "publish <path> [version]",
		Short: "Stage a new package version from a source folder",
		Long: `Copy a file or folder into the repository as a new package version.

When no version is given, the next version is derived from the latest
existing one by incrementing its trailing number, or 0.0.1 for a package
without versions. The publication time is written into the new
version.toml automatically.

Examples:
  # Publish the next version of an existing package
  repkg publish --repo ./my-repo --identifier my-script ./build

  # Publish an explicit version of a new package
  repkg publish --repo ./my-repo --identifier my-script --new ./build 1.0.0`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runPublish(repoFlag, identifierFlag, newFlag, args)
		},
	}

	c.Flags().StringVarP(&repoFlag, "repo", "r", ".", "Path to the repository to publish into")
	c.Flags().StringVarP(&identifierFlag, "identifier", "i", "", "Identifier of the package")
	c.Flags().BoolVarP(&newFlag, "new", "n", false, "Create the package if it does not exist")
	_ = c.MarkFlagRequired("identifier")

	return c
}

func runPublish(repoDir, identifier string, createNew bool, args []string) error {
	sourcePath := args[0]
	versionArg := ""
	if len(args) == 2 {
		versionArg = args[1]
	}

	if !isFilenameSafe(identifier) {
		return &oerrors.DetailError{
			Type:    "invalid argument",
			Message: fmt.Sprintf("the package identifier is not filename-safe: %q", identifier),
			Hint:    "Choose an identifier without path separators or special characters.",
			Cause:   oerrors.ErrValidation,
		}
	}
	if versionArg != "" && !isFilenameSafe(versionArg) {
		return &oerrors.DetailError{
			Type:    "invalid argument",
			Message: fmt.Sprintf("the package version is not filename-safe: %q", versionArg),
			Cause:   oerrors.ErrValidation,
		}
	}

	if _, err := os.Stat(sourcePath); err != nil {
		return &oerrors.DetailError{
			Type:     "invalid argument",
			Message:  "the source folder to publish does not exist",
			Location: sourcePath,
			Cause:    oerrors.ErrNotFound,
		}
	}

	r, err := repo.Read(repoDir, readOptions())
	if err != nil {
		return err
	}

	pkg := findPackage(r, identifier)
	var pkgPath string
	var existing []string
	switch {
	case pkg != nil:
		pkgPath = pkg.Path
		for _, v := range pkg.Versions {
			existing = append(existing, v.Name)
		}
	case createNew:
		pkgPath = filepath.Join(r.Path, identifier)
		if err := createPackage(pkgPath); err != nil {
			return err
		}
		output.Info("created package", "identifier", identifier, "path", pkgPath)
	default:
		return &oerrors.DetailError{
			Type:    "unknown package",
			Message: fmt.Sprintf("package %q does not exist", identifier),
			Hint:    "Use --new to create a new package.",
			Cause:   oerrors.ErrNotFound,
		}
	}

	versionName, err := nextVersionName(versionArg, existing)
	if err != nil {
		return err
	}

	versionPath := filepath.Join(pkgPath, versionName)
	if err := os.MkdirAll(versionPath, 0o755); err != nil {
		return fmt.Errorf("creating version directory %s: %w", versionPath, err)
	}
	if err := copyPath(sourcePath, versionPath); err != nil {
		return err
	}

	// Back-fill the publication timestamp; the user edits the rest.
	configText, err := templates.Render(templates.Version, templates.VersionData{
		Time: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	versionConfigPath := filepath.Join(versionPath, repo.VersionConfigFile)
	if err := os.WriteFile(versionConfigPath, []byte(configText), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", versionConfigPath, err)
	}

	output.Println(output.Checkmark("Created version " + output.StyleNoun.Render(versionName)))
	output.Print(output.RenderFileList([]output.FileEntry{
		{Path: versionPath, Description: "staged source files"},
		{Path: versionConfigPath, Description: "edit before exporting"},
	}, 48))
	return nil
}

func findPackage(r *repo.Repository, identifier string) *repo.Package {
	for _, pkg := range r.Packages {
		if pkg.Identifier == identifier {
			return pkg
		}
	}
	return nil
}

// createPackage scaffolds a new package directory with a template config.
func createPackage(pkgPath string) error {
	if _, err := os.Stat(pkgPath); err == nil {
		return &oerrors.DetailError{
			Type:     "invalid argument",
			Message:  "package directory already exists",
			Location: pkgPath,
			Cause:    oerrors.ErrValidation,
		}
	}
	if err := os.MkdirAll(pkgPath, 0o755); err != nil {
		return fmt.Errorf("creating package directory %s: %w", pkgPath, err)
	}

	configText, err := templates.Render(templates.Package, templates.DefaultPackageData())
	if err != nil {
		return err
	}
	configPath := filepath.Join(pkgPath, repo.PackageConfigFile)
	if err := os.WriteFile(configPath, []byte(configText), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	return nil
}

// nextVersionName picks the version directory name: the explicit argument
// when given (refusing duplicates), else the incremented latest, else the
// first version.
func nextVersionName(versionArg string, existing []string) (string, error) {
	if versionArg != "" {
		for _, name := range existing {
			if name == versionArg {
				return "", &oerrors.DetailError{
					Type:    "invalid argument",
					Message: fmt.Sprintf("version already exists: %q", versionArg),
					Cause:   oerrors.ErrValidation,
				}
			}
		}
		return versionArg, nil
	}

	latest, ok := versions.Latest(existing)
	if !ok {
		return versions.FirstVersion, nil
	}
	return versions.Increment(latest)
}

// isFilenameSafe reports whether name can be used as a directory name on
// all supported platforms.
func isFilenameSafe(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\:*?"<>|`) {
		return false
	}
	for _, r := range name {
		if r < 0x20 {
			return false
		}
	}
	if strings.HasSuffix(name, " ") || strings.HasSuffix(name, ".") {
		return false
	}
	return true
}

// copyPath copies a file into dst, or a directory tree's contents into dst.
func copyPath(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	if !info.IsDir() {
		return copyFile(src, filepath.Join(dst, filepath.Base(src)))
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", src, err)
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", dstPath, err)
			}
			if err := copyPath(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
