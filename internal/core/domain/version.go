package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// Version is a dotted version number such as 3.14.1.
type Version []int

// UnknownVersion is the degraded result of a version probe that found no version.
// It renders as "0".
var UnknownVersion = Version{0}

var versionPattern = regexp.MustCompile(`[0-9]+\.[0-9][0-9.]*`)

// ParseVersion extracts the first dotted version from s.
// It returns UnknownVersion when s contains none.
func ParseVersion(s string) Version {
	m := versionPattern.FindString(s)
	if m == "" {
		return UnknownVersion
	}

	var v Version
	for _, part := range strings.Split(m, ".") {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return UnknownVersion
		}
		v = append(v, n)
	}
	return v
}

// IsUnknown reports whether v is the unknown sentinel.
func (v Version) IsUnknown() bool {
	return len(v) == 0 || (len(v) == 1 && v[0] == 0)
}

// String joins the components with dots.
func (v Version) String() string {
	if len(v) == 0 {
		return "0"
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// Compare orders versions component-wise; missing components count as zero.
func (v Version) Compare(o Version) int {
	n := max(len(v), len(o))
	for i := range n {
		a, b := 0, 0
		if i < len(v) {
			a = v[i]
		}
		if i < len(o) {
			b = o[i]
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v >= the given components.
func (v Version) AtLeast(parts ...int) bool {
	return v.Compare(Version(parts)) >= 0
}
