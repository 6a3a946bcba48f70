package docpath

// Version is the version segment of a documentation URL. It is either the
// "latest" alias or an explicit version string such as "v10".
type Version struct {
	explicit string // empty means latest
}

// LatestToken is the URL segment that selects the newest documentation.
const LatestToken = "latest"

// Latest returns the version alias for the newest documentation.
func Latest() Version {
	return Version{}
}

// Explicit returns a pinned version. Explicit("latest") and Explicit("")
// are the same as Latest().
func Explicit(v string) Version {
	if v == LatestToken {
		return Version{}
	}
	return Version{explicit: v}
}

// ParseVersion converts a URL segment into a Version.
func ParseVersion(s string) Version {
	return Explicit(s)
}

// IsLatest reports whether v is the latest alias.
func (v Version) IsLatest() bool {
	return v.explicit == ""
}

// String returns the URL segment for v.
func (v Version) String() string {
	if v.explicit == "" {
		return LatestToken
	}
	return v.explicit
}
