// Package richtext reads package descriptions and changelogs as RTF,
// converting Markdown sources through an external pandoc process when no
// RTF file is present.
package richtext

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	oerrors "github.com/repkg/cli/internal/errors"
)

// Converter reads rich-text sidecar files.
type Converter struct {
	// Pandoc is the pandoc executable to invoke. Empty means "pandoc".
	Pandoc string
}

// Read looks for a rich-text file next to base (a path without extension).
// It tries base+".rtf" verbatim first, then converts base+".md" through
// pandoc. The second return is false when neither file exists.
func (c *Converter) Read(base string) (string, bool, error) {
	rtfPath := base + ".rtf"
	if data, err := os.ReadFile(rtfPath); err == nil {
		return string(data), true, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("reading %s: %w", rtfPath, err)
	}

	mdPath := base + ".md"
	if _, err := os.Stat(mdPath); err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("checking %s: %w", mdPath, err)
	}

	text, err := c.convert(mdPath)
	if err != nil {
		return "", false, err
	}
	return text, true, nil
}

func (c *Converter) convert(mdPath string) (string, error) {
	pandoc := c.Pandoc
	if pandoc == "" {
		pandoc = "pandoc"
	}

	cmd := exec.Command(pandoc, "--standalone", "--to", "rtf", mdPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		// ErrNotFound covers bare command names; fs.ErrNotExist covers an
		// explicit --pandoc path that does not exist.
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", &oerrors.DetailError{
				Type:     "converter not installed",
				Message:  "pandoc is required for converting Markdown files to RTF",
				Location: mdPath,
				Hint:     "Install pandoc or point to it with --pandoc or REPKG_PANDOC.",
				Cause:    oerrors.ErrCollaborator,
			}
		}
		return "", &oerrors.DetailError{
			Type:     "converter failed",
			Message:  fmt.Sprintf("pandoc returned unexpected output: %s", stderr.String()),
			Location: mdPath,
			Cause:    oerrors.ErrCollaborator,
		}
	}

	if stdout.Len() == 0 {
		return "", &oerrors.DetailError{
			Type:     "converter failed",
			Message:  "pandoc returned unexpected output",
			Location: mdPath,
			Cause:    oerrors.ErrCollaborator,
		}
	}

	return stdout.String(), nil
}
