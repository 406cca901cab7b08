package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/repkg/cli/internal/errors"
	"github.com/repkg/cli/internal/templates"
)

func TestTemplate_ValidNames(t *testing.T) {
	for _, name := range templates.ValidNames() {
		cmd := NewTemplateCmd()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{name})

		assert.NoError(t, cmd.Execute(), name)
	}
}

func TestTemplate_UnknownName(t *testing.T) {
	cmd := NewTemplateCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bogus"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "unknown template name")
}
