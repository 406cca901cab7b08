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

func runPublishCmd(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewPublishCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.Execute()
}

func newSourceDir(t *testing.T) string {
	t.Helper()
	src := t.TempDir()
	writeTestFile(t, filepath.Join(src, "main.lua"), "-- new script body\n")
	writeTestFile(t, filepath.Join(src, "lib", "util.lua"), "-- helper\n")
	return src
}

func TestNewPublishCmd(t *testing.T) {
	cmd := NewPublishCmd()

	assert.Equal(t, "publish <path> [version]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("repo"))
	assert.NotNil(t, cmd.Flags().Lookup("identifier"))
	assert.NotNil(t, cmd.Flags().Lookup("new"))
}

func TestPublish_AutoIncrement(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := newSourceDir(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "fx-chunk-data", src)
	require.NoError(t, err)

	versionDir := filepath.Join(repoDir, "fx-chunk-data", "0.0.2")
	assert.FileExists(t, filepath.Join(versionDir, "main.lua"))
	assert.FileExists(t, filepath.Join(versionDir, "lib", "util.lua"))
	assert.FileExists(t, filepath.Join(versionDir, "version.toml"))

	// the staged config carries a publication timestamp
	data, err := os.ReadFile(filepath.Join(versionDir, "version.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "time = ")
}

func TestPublish_ExplicitVersion(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := newSourceDir(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "fx-chunk-data", src, "1.0.0")
	require.NoError(t, err)
	assert.DirExists(t, filepath.Join(repoDir, "fx-chunk-data", "1.0.0"))
}

func TestPublish_ExistingVersionRejected(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := newSourceDir(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "fx-chunk-data", src, "0.0.1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), "version already exists")
}

func TestPublish_SingleFile(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := filepath.Join(t.TempDir(), "solo.lua")
	writeTestFile(t, src, "-- solo\n")

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "fx-chunk-data", src)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(repoDir, "fx-chunk-data", "0.0.2", "solo.lua"))
}

func TestPublish_NewPackage(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := newSourceDir(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "brand-new", "--new", src)
	require.NoError(t, err)

	pkgDir := filepath.Join(repoDir, "brand-new")
	assert.FileExists(t, filepath.Join(pkgDir, "package.toml"))
	assert.FileExists(t, filepath.Join(pkgDir, "0.0.1", "main.lua"))
	assert.FileExists(t, filepath.Join(pkgDir, "0.0.1", "version.toml"))
}

func TestPublish_UnknownPackage(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := newSourceDir(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "missing", src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
	assert.Contains(t, err.Error(), "--new")
}

func TestPublish_UnsafeIdentifier(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := newSourceDir(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "../escape", src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestPublish_UnsafeVersion(t *testing.T) {
	repoDir := newScriptRepo(t)
	src := newSourceDir(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "fx-chunk-data", src, "1.0/evil")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestPublish_MissingSource(t *testing.T) {
	repoDir := newScriptRepo(t)

	err := runPublishCmd(t, "--repo", repoDir, "--identifier", "fx-chunk-data",
		filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrNotFound))
}

func TestIsFilenameSafe(t *testing.T) {
	safe := []string{"fx-chunk-data", "1.0.0", "My Package"}
	for _, name := range safe {
		assert.True(t, isFilenameSafe(name), name)
	}

	unsafe := []string{"", ".", "..", "a/b", `a\b`, "a:b", "a?b", "trailing.", "trailing "}
	for _, name := range unsafe {
		assert.False(t, isFilenameSafe(name), name)
	}
}
