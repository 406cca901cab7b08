// Package repo models a ReaPack package repository on disk and compiles it
// into the XML index document consumed by the ReaPack client.
//
// A repository is a directory tree: the root carries repository.toml, each
// package directory carries package.toml, and each version directory below a
// package carries version.toml. Everything else below a version directory is
// a source file.
package repo

import (
	"fmt"

	oerrors "github.com/repkg/cli/internal/errors"
)

// Marker config file names. A directory without its marker file is not
// considered part of the repository.
const (
	RepositoryConfigFile = "repository.toml"
	PackageConfigFile    = "package.toml"
	VersionConfigFile    = "version.toml"
)

// PackageType is the kind of content a package ships. The token set is fixed
// by the ReaPack index format.
type PackageType string

// Package types, as understood by the ReaPack client.
const (
	TypeScript          PackageType = "script"
	TypeExtension       PackageType = "extension"
	TypeEffect          PackageType = "effect"
	TypeData            PackageType = "data"
	TypeTheme           PackageType = "theme"
	TypeLangPack        PackageType = "langpack"
	TypeWebInterface    PackageType = "webinterface"
	TypeProjectTemplate PackageType = "projecttpl"
	TypeTrackTemplate   PackageType = "tracktpl"
	TypeMIDINoteNames   PackageType = "midinotenames"
	TypeAutomationItem  PackageType = "autoitem"
)

var packageTypes = map[PackageType]bool{
	TypeScript:          true,
	TypeExtension:       true,
	TypeEffect:          true,
	TypeData:            true,
	TypeTheme:           true,
	TypeLangPack:        true,
	TypeWebInterface:    true,
	TypeProjectTemplate: true,
	TypeTrackTemplate:   true,
	TypeMIDINoteNames:   true,
	TypeAutomationItem:  true,
}

// InvalidPackageTypeError reports a package type token outside the closed
// set. Matching is case-sensitive and exact; there are no aliases.
type InvalidPackageTypeError struct {
	Token string
}

// Error implements the error interface.
func (e *InvalidPackageTypeError) Error() string {
	return fmt.Sprintf("invalid package type: %s", e.Token)
}

// Unwrap marks this as a validation error.
func (e *InvalidPackageTypeError) Unwrap() error {
	return oerrors.ErrValidation
}

// ParsePackageType parses a package type token.
func ParsePackageType(s string) (PackageType, error) {
	t := PackageType(s)
	if !packageTypes[t] {
		return "", &InvalidPackageTypeError{Token: s}
	}
	return t, nil
}

// String returns the wire token.
func (t PackageType) String() string {
	return string(t)
}

// ActionListSection is a UI section of the host application in which an
// entrypoint script can appear.
type ActionListSection string

// Action list sections, as understood by the ReaPack client.
const (
	SectionMain                ActionListSection = "main"
	SectionMIDIEditor          ActionListSection = "midi_editor"
	SectionMIDIInlineEditor    ActionListSection = "midi_inlineeditor"
	SectionMIDIEventListEditor ActionListSection = "midi_eventlisteditor"
	SectionMediaExplorer       ActionListSection = "mediaexplorer"
)

// sectionOrder fixes the serialization order of section tokens so the
// generated index is deterministic.
var sectionOrder = []ActionListSection{
	SectionMain,
	SectionMIDIEditor,
	SectionMIDIInlineEditor,
	SectionMIDIEventListEditor,
	SectionMediaExplorer,
}

// InvalidActionListSectionError reports a section token outside the closed
// set.
type InvalidActionListSectionError struct {
	Token string
}

// Error implements the error interface.
func (e *InvalidActionListSectionError) Error() string {
	return fmt.Sprintf("invalid action list section: %s", e.Token)
}

// Unwrap marks this as a validation error.
func (e *InvalidActionListSectionError) Unwrap() error {
	return oerrors.ErrValidation
}

// ParseActionListSection parses a section token.
func ParseActionListSection(s string) (ActionListSection, error) {
	section := ActionListSection(s)
	for _, known := range sectionOrder {
		if section == known {
			return section, nil
		}
	}
	return "", &InvalidActionListSectionError{Token: s}
}

// String returns the wire token.
func (s ActionListSection) String() string {
	return string(s)
}
