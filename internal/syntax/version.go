package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrUnknownVersion is returned when a string does not name a registered version
var ErrUnknownVersion = errors.New("unknown syntax version")

// RangeError reports the string that could not be resolved to a version
type RangeError struct {
	Value string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownVersion, e.Value)
}

func (e *RangeError) Unwrap() error { return ErrUnknownVersion }

// Version identifies a dialect of the target language
type Version struct {
	Name  string `json:"name" yaml:"name"`
	Major int    `json:"major" yaml:"major"`
	Minor int    `json:"minor" yaml:"minor"`
}

// Well-known versions
var (
	CSharp50 = Version{Name: "C#", Major: 5, Minor: 0}
	CSharp60 = Version{Name: "C#", Major: 6, Minor: 0}
	CSharp70 = Version{Name: "C#", Major: 7, Minor: 0}
	CSharp90 = Version{Name: "C#", Major: 9, Minor: 0}
)

// registry is ordered oldest to newest
var registry = []Version{CSharp50, CSharp60, CSharp70, CSharp90}

var maxVersion = func() Version {
	best := registry[0]
	for _, v := range registry[1:] {
		if best.Less(v) {
			best = v
		}
	}
	return best
}()

// All returns the registered versions, oldest first
func All() []Version {
	out := make([]Version, len(registry))
	copy(out, registry)
	return out
}

// Max returns the greatest registered version
func Max() Version { return maxVersion }

// String returns the canonical "<name> <major>.<minor>" form
func (v Version) String() string {
	return fmt.Sprintf("%s %d.%d", v.Name, v.Major, v.Minor)
}

// IsZero reports whether v is the zero value
func (v Version) IsZero() bool { return v == Version{} }

// Compare returns -1, 0 or 1 ordering by major then minor
func (v Version) Compare(other Version) int {
	switch {
	case v.Major != other.Major:
		if v.Major < other.Major {
			return -1
		}
		return 1
	case v.Minor != other.Minor:
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether v orders before other
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// AtLeast reports whether v is other or newer
func (v Version) AtLeast(other Version) bool { return v.Compare(other) >= 0 }

// FromString resolves the canonical string form of a registered version
func FromString(s string) (Version, error) {
	for _, v := range registry {
		if v.String() == s {
			return v, nil
		}
	}
	return Version{}, &RangeError{Value: s}
}

// Parse accepts the canonical form or a bare number such as "6" or "7.0"
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if v, err := FromString(trimmed); err == nil {
		return v, nil
	}

	number := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(trimmed, "C#"), "csharp"))
	sv, err := semver.NewVersion(number)
	if err != nil {
		return Version{}, &RangeError{Value: s}
	}
	for _, v := range registry {
		if uint64(v.Major) == sv.Major() && uint64(v.Minor) == sv.Minor() {
			return v, nil
		}
	}
	return Version{}, &RangeError{Value: s}
}

// MarshalText encodes the canonical form
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText accepts anything Parse accepts
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
