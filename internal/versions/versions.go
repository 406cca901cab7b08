// Package versions orders and increments dotted version names used as
// version directory names.
package versions

import (
	"fmt"
	"strconv"
	"strings"

	oerrors "github.com/repkg/cli/internal/errors"
)

// FirstVersion is the version assigned when a package has no versions yet.
const FirstVersion = "0.0.1"

// Compare compares two version names and returns -1, 0, or 1.
//
// Names are split on '.' and corresponding segments are compared as strings,
// not numbers. This means "9" sorts after "10". The ordering is a known quirk
// kept for compatibility with existing repositories; do not switch to numeric
// comparison without a migration plan for downstream clients.
//
// When all shared segments are equal, the name with more segments is greater.
func Compare(a, b string) int {
	segsA := strings.Split(a, ".")
	segsB := strings.Split(b, ".")

	for i := 0; i < len(segsA) && i < len(segsB); i++ {
		if c := strings.Compare(segsA[i], segsB[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(segsA) > len(segsB):
		return 1
	case len(segsA) < len(segsB):
		return -1
	default:
		return 0
	}
}

// Latest returns the greatest version name under Compare. The second return
// is false when names is empty.
func Latest(names []string) (string, bool) {
	if len(names) == 0 {
		return "", false
	}

	latest := names[0]
	for _, name := range names[1:] {
		if Compare(name, latest) > 0 {
			latest = name
		}
	}
	return latest, true
}

// Increment bumps the trailing numeric run of a version name by one:
// "0.1.9" becomes "0.1.10", "v2" becomes "v3". A name with no trailing
// digits cannot be incremented and yields an error wrapping ErrValidation.
func Increment(name string) (string, error) {
	suffixStart := len(name)
	for suffixStart > 0 {
		c := name[suffixStart-1]
		if c < '0' || c > '9' {
			break
		}
		suffixStart--
	}

	suffix := name[suffixStart:]
	if suffix == "" {
		return "", &oerrors.DetailError{
			Type:    "unknown version format",
			Message: fmt.Sprintf("unable to parse version %q, please specify the new version manually", name),
			Cause:   oerrors.ErrValidation,
		}
	}

	n, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return "", &oerrors.DetailError{
			Type:    "unknown version format",
			Message: fmt.Sprintf("unable to parse version %q: %v", name, err),
			Cause:   oerrors.ErrValidation,
		}
	}

	return name[:suffixStart] + strconv.FormatUint(n+1, 10), nil
}
