package define

import (
	"fmt"

	"github.com/defineEditor/parse-define-xml/internal/diagnostic"
)

//go:generate go tool stringer -type=Version -linecomment -output=version_string.go

// Version is a Define-XML schema generation.
type Version int

const (
	VersionUnknown Version = iota // unknown
	Version20                     // 2.0
	Version21                     // 2.1
)

// ParseVersion converts a version tag ("2.0" or "2.1") into a Version.
func ParseVersion(tag string) (Version, error) {
	switch tag {
	case Version20.String():
		return Version20, nil
	case Version21.String():
		return Version21, nil
	default:
		return VersionUnknown, fmt.Errorf("%w: %q", diagnostic.ErrUnsupportedVersion, tag)
	}
}

// IsValid returns true if the version is one the mapper supports.
func (v Version) IsValid() bool {
	return v == Version20 || v == Version21
}

// MarshalText encodes the version as its tag.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
