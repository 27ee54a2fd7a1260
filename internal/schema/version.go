package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a parsed format version declared by a filing header.
// FEC versions are "MAJOR" or "MAJOR.MINOR" strings ("3", "5.0", "8.1").
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a format version string.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	major, minor := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		major, minor = s[:i], s[i+1:]
	}

	maj, err := strconv.Atoi(major)
	if err != nil || maj < 0 {
		return Version{}, fmt.Errorf("invalid format version %q", s)
	}

	v := Version{Major: maj}
	if minor != "" {
		min, err := strconv.Atoi(minor)
		if err != nil || min < 0 {
			return Version{}, fmt.Errorf("invalid format version %q", s)
		}
		v.Minor = min
	}
	return v, nil
}

// Compare returns -1, 0, or 1 if v is lower than, equal to, or higher than o.
func (v Version) Compare(o Version) int {
	if v.Major != o.Major {
		if v.Major < o.Major {
			return -1
		}
		return 1
	}
	if v.Minor != o.Minor {
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
