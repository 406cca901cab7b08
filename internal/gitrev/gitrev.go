// Package gitrev resolves the source-control revision id of a directory by
// shelling out to git.
package gitrev

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	oerrors "github.com/repkg/cli/internal/errors"
)

// Head returns the full commit hash of HEAD for the repository containing
// dir. It fails if git cannot be launched or dir is not under version
// control.
func Head(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = dir

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &oerrors.DetailError{
				Type:     "git error",
				Message:  fmt.Sprintf("failed to get commit hash: %s", strings.TrimSpace(string(exitErr.Stderr))),
				Location: dir,
				Hint:     "Make sure the repository directory is under git version control.",
				Cause:    oerrors.ErrCollaborator,
			}
		}
		return "", &oerrors.DetailError{
			Type:     "git error",
			Message:  "failed to launch git, please ensure it is accessible through the command line",
			Location: dir,
			Cause:    oerrors.ErrCollaborator,
		}
	}

	hash := strings.TrimSpace(string(out))
	if hash == "" {
		return "", &oerrors.DetailError{
			Type:     "git error",
			Message:  "git returned an empty commit hash",
			Location: dir,
			Cause:    oerrors.ErrCollaborator,
		}
	}

	return hash, nil
}
