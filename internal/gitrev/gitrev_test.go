package gitrev

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/repkg/cli/internal/errors"
)

func TestHead_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	// A fresh temp dir is not under version control.
	_, err := Head(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrCollaborator)
}
