package docpath

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	ErrEmptyRoute = errors.New("empty route")
	ErrNoVersion  = errors.New("route has no version segment")
	ErrBadSegment = errors.New("route segment contains a backslash or control character")
)

var versionPattern = regexp.MustCompile(`^v\d+(\.\d+)*(\.x)?$`)

// DocPath is a parsed documentation URL: the segments before the version,
// the version itself, and the segments after it. A DocPath is never mutated
// after construction.
type DocPath struct {
	base    []string
	version Version
	page    []string
}

// New builds a DocPath. The slices are copied.
func New(base []string, version Version, page []string) DocPath {
	return DocPath{
		base:    clone(base),
		version: version,
		page:    clone(page),
	}
}

// Parse splits a route such as "/docs/manual/latest/introduction" into a
// DocPath. The version segment is the first segment that is "latest" or
// looks like "v8", "v8.0.0" or "v9.1.x". Segments containing a backslash or
// a control character are rejected: browsers read "/\host" as "//host".
func Parse(route string) (DocPath, error) {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}

	var segments []string
	for _, s := range strings.Split(route, "/") {
		if s == "" {
			continue
		}
		if !safeSegment(s) {
			return DocPath{}, fmt.Errorf("%w: %q", ErrBadSegment, s)
		}
		segments = append(segments, s)
	}
	if len(segments) == 0 {
		return DocPath{}, ErrEmptyRoute
	}

	for i, s := range segments {
		if IsVersionSegment(s) {
			return DocPath{
				base:    segments[:i:i],
				version: ParseVersion(s),
				page:    segments[i+1:],
			}, nil
		}
	}
	return DocPath{}, ErrNoVersion
}

// IsVersionSegment reports whether s is recognised as a version segment.
func IsVersionSegment(s string) bool {
	return s == LatestToken || versionPattern.MatchString(s)
}

func safeSegment(s string) bool {
	for _, r := range s {
		if r == '\\' || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// Base returns a copy of the segments preceding the version.
func (p DocPath) Base() []string { return clone(p.base) }

// Version returns the version segment.
func (p DocPath) Version() Version { return p.version }

// Page returns a copy of the segments following the version.
func (p DocPath) Page() []string { return clone(p.page) }

// WithVersion returns a copy of p pointing at version v.
func (p DocPath) WithVersion(v Version) DocPath {
	return New(p.base, v, p.page)
}

// String reassembles the path with a leading slash.
func (p DocPath) String() string {
	return join(p.base, p.version.String(), p.page)
}

// Rewrite returns the path to navigate to when newVersion is selected while
// viewing current. An empty newVersion leaves the path unchanged.
func Rewrite(current DocPath, newVersion string) string {
	if newVersion == "" {
		return current.String()
	}
	return join(current.base, newVersion, current.page)
}

func join(base []string, version string, page []string) string {
	var b strings.Builder
	for _, s := range base {
		b.WriteByte('/')
		b.WriteString(s)
	}
	b.WriteByte('/')
	b.WriteString(version)
	for _, s := range page {
		b.WriteByte('/')
		b.WriteString(s)
	}
	return b.String()
}

func clone(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
