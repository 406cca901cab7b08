package repo

import (
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/repkg/cli/internal/errors"
)

// placeholderRe finds brace-delimited tokens left over after substitution.
var placeholderRe = regexp.MustCompile(`\{[^{}]*\}`)

// UnknownVariableError reports a URL pattern placeholder that is not a
// recognized variable. Token includes the braces.
type UnknownVariableError struct {
	Token string
}

// Error implements the error interface.
func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable in URL pattern: `%s`", e.Token)
}

// Unwrap marks this as a validation error.
func (e *UnknownVariableError) Unwrap() error {
	return oerrors.ErrValidation
}

// EncodePath percent-encodes a slash-separated relative path for use in a
// URL. Alphanumerics and '/', '.', '-', '_' pass through; every other byte
// is encoded as %XX. The result is a pure function of the input string.
func EncodePath(path string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '/' || c == '.' || c == '-' || c == '_':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}

// RenderSourceURL substitutes {relpath} into pattern and verifies no
// placeholder remains. The pattern must already have repository-level
// variables ({git_commit}) applied.
func RenderSourceURL(pattern, relpath string) (string, error) {
	url := strings.ReplaceAll(pattern, "{relpath}", EncodePath(relpath))

	if token := placeholderRe.FindString(url); token != "" {
		return "", &UnknownVariableError{Token: token}
	}
	return url, nil
}
