package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/repkg/cli/internal/errors"
)

func TestNewExportCmd(t *testing.T) {
	cmd := NewExportCmd()

	assert.Equal(t, "export [output-path]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotNil(t, cmd.Flags().Lookup("repo"))
}

func TestExport_WritesIndex(t *testing.T) {
	repoDir := newScriptRepo(t)
	outPath := filepath.Join(t.TempDir(), "index.xml")

	cmd := NewExportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--repo", repoDir, outPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `<index version="1"`)
	assert.Contains(t, string(data), `name="fx-chunk-data"`)
	assert.Contains(t, string(data), "https://host/fx-chunk-data/0.0.1/Copy%20chunk%20data.lua")
}

func TestExport_OutputDirectory(t *testing.T) {
	repoDir := newScriptRepo(t)
	outDir := t.TempDir()

	cmd := NewExportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--repo", repoDir, outDir})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(outDir, "index.xml"))
}

func TestExport_NotARepository(t *testing.T) {
	cmd := NewExportCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--repo", t.TempDir(), filepath.Join(t.TempDir(), "index.xml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}
