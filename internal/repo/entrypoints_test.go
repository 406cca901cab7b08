package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/repkg/cli/internal/errors"
)

func TestParseEntrypoints(t *testing.T) {
	raw := map[string][]string{
		"main":        {"scripts/*.lua"},
		"midi_editor": {"midi/*.lua"},
	}
	e, err := ParseEntrypoints(raw, "package.toml")
	require.NoError(t, err)
	assert.Equal(t, []string{"scripts/*.lua"}, e[SectionMain])
	assert.Equal(t, []string{"midi/*.lua"}, e[SectionMIDIEditor])
}

func TestParseEntrypoints_UnknownSection(t *testing.T) {
	_, err := ParseEntrypoints(map[string][]string{"Main": {"*.lua"}}, "package.toml")
	require.Error(t, err)

	var sectionErr *InvalidActionListSectionError
	require.ErrorAs(t, err, &sectionErr)
	assert.Equal(t, "Main", sectionErr.Token)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestParseEntrypoints_Nil(t *testing.T) {
	e, err := ParseEntrypoints(nil, "package.toml")
	require.NoError(t, err)
	assert.Nil(t, e)
}

func TestHasPatterns(t *testing.T) {
	assert.False(t, Entrypoints(nil).HasPatterns())
	assert.False(t, Entrypoints{SectionMain: nil}.HasPatterns())
	assert.False(t, Entrypoints{SectionMain: {}}.HasPatterns())
	assert.True(t, Entrypoints{SectionMain: {"*.lua"}}.HasPatterns())
}

func TestMatcher_LiteralSeparator(t *testing.T) {
	m, err := CompileEntrypoints(Entrypoints{SectionMain: {"scripts/*.lua"}}, "package.toml")
	require.NoError(t, err)

	// a bare '*' does not cross a '/' boundary
	assert.Equal(t, []ActionListSection{SectionMain}, m.Match("scripts/foo.lua"))
	assert.Empty(t, m.Match("scripts/sub/foo.lua"))
	assert.Empty(t, m.Match("foo.lua"))
}

func TestMatcher_MultipleSections(t *testing.T) {
	m, err := CompileEntrypoints(Entrypoints{
		SectionMediaExplorer: {"*.lua"},
		SectionMain:          {"*.lua", "extra/*.lua"},
	}, "package.toml")
	require.NoError(t, err)

	// deterministic fixed order regardless of map iteration
	assert.Equal(t, []ActionListSection{SectionMain, SectionMediaExplorer}, m.Match("foo.lua"))
	assert.Equal(t, []ActionListSection{SectionMain}, m.Match("extra/foo.lua"))
}

func TestMatcher_NilMapMatchesNothing(t *testing.T) {
	m, err := CompileEntrypoints(nil, "package.toml")
	require.NoError(t, err)
	assert.Empty(t, m.Match("foo.lua"))
}

func TestCompileEntrypoints_InvalidPattern(t *testing.T) {
	_, err := CompileEntrypoints(Entrypoints{SectionMain: {"[unclosed"}}, "package.toml")
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}
