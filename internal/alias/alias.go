// Package alias generates and validates the short identifiers that map to
// long URLs.
package alias

import (
	"fmt"

	"github.com/kirankumar485/urlshortner/pkg/util"
)

const (
	// GeneratedLength is the length of generated aliases (8 hex chars)
	GeneratedLength = 8
	// MinLength is the minimum custom alias length
	MinLength = 4
	// MaxLength is the maximum custom alias length
	MaxLength = 32
)

// Generate derives an alias from the long URL. The attempt counter
// perturbs the hash so collision handling can probe new candidates.
func Generate(longURL string, attempt int) string {
	h := util.HashString(longURL) + uint64(attempt)
	return fmt.Sprintf("%0*x", GeneratedLength, uint32(h))
}

// IsValid checks whether a custom alias is acceptable: 4 to 32 characters
// from [a-zA-Z0-9_-].
func IsValid(s string) bool {
	if len(s) < MinLength || len(s) > MaxLength {
		return false
	}

	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}

	return true
}
