package templates

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidName(t *testing.T) {
	for _, name := range ValidNames() {
		assert.True(t, IsValidName(name))
	}
	assert.False(t, IsValidName("bogus"))
}

func TestRender_Repository(t *testing.T) {
	out, err := Render(Repository, RepositoryData{
		Identifier: "my-repo",
		Author:     "Jane Doe",
		URLPattern: "https://host/{git_commit}/{relpath}",
	})
	require.NoError(t, err)

	// the rendered template is valid TOML with the values in place
	var decoded map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "my-repo", decoded["identifier"])
	assert.Equal(t, "Jane Doe", decoded["author"])
	assert.Equal(t, "https://host/{git_commit}/{relpath}", decoded["url_pattern"])
}

func TestRender_Package(t *testing.T) {
	out, err := Render(Package, DefaultPackageData())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Misc", decoded["category"])
	assert.Equal(t, "script", decoded["type"])
}

func TestRender_Version(t *testing.T) {
	out, err := Render(Version, VersionData{Time: "2023-01-02T15:04:05Z"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	// bare TOML datetime, not a quoted string
	assert.Contains(t, out, "time = 2023-01-02T15:04:05Z")
}

func TestRender_UnknownName(t *testing.T) {
	_, err := Render("bogus", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown template")
}
