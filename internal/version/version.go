package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed release version: a numeric triple plus an optional
// prerelease label. The zero value is "0.0.0".
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
	Pre   string
}

// ParseError reports input that does not match the accepted
// X.Y[.Z][-label] shape. Input preserves the offending text.
type ParseError struct {
	Input string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("invalid version format: %s", e.Input)
}

// Parse reads a version string such as "1.2.3", "v1.2" or "1.2.3-beta.1".
// A single leading "v" is ignored, the patch field defaults to zero when
// omitted, and everything after the first "-" is the prerelease label.
func Parse(text string) (Version, error) {
	s := strings.TrimPrefix(text, "v")

	numeric := s
	pre := ""
	if idx := strings.Index(s, "-"); idx >= 0 {
		numeric = s[:idx]
		pre = s[idx+1:]
	}

	parts := strings.Split(numeric, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, ParseError{Input: text}
	}

	fields := make([]uint64, 3)
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return Version{}, ParseError{Input: text}
		}
		fields[i] = n
	}

	return Version{Major: fields[0], Minor: fields[1], Patch: fields[2], Pre: pre}, nil
}

// MustParse is like Parse but panics on invalid input. For fixed
// strings in tests and package setup.
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// String renders the canonical form, always with all three numeric fields
// and never with a "v" prefix.
func (v Version) String() string {
	if v.Pre != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Pre)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare orders two versions. The numeric triple dominates; when the
// triples are equal, a prerelease sorts strictly before the corresponding
// release, and two prerelease labels compare lexicographically.
func Compare(a, b Version) int {
	if c := compareUint(a.Major, b.Major); c != 0 {
		return c
	}
	if c := compareUint(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := compareUint(a.Patch, b.Patch); c != 0 {
		return c
	}
	switch {
	case a.Pre == b.Pre:
		return 0
	case a.Pre == "":
		return 1
	case b.Pre == "":
		return -1
	}
	return strings.Compare(a.Pre, b.Pre)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
