package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// newScriptRepo creates a minimal valid repository with one script package
// holding one version and returns the repository directory.
func newScriptRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeTestFile(t, filepath.Join(dir, "repository.toml"), `
author = "Jane Doe"
url_pattern = "https://host/{relpath}"
`)
	writeTestFile(t, filepath.Join(dir, "fx-chunk-data", "package.toml"), `
category = "Utilities"
type = "script"

[entrypoints]
main = ["*.lua"]
`)
	writeTestFile(t, filepath.Join(dir, "fx-chunk-data", "0.0.1", "version.toml"),
		"time = 2023-01-02T00:00:00Z\n")
	writeTestFile(t, filepath.Join(dir, "fx-chunk-data", "0.0.1", "Copy chunk data.lua"),
		"-- script body\n")

	return dir
}
