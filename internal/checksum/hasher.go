package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hasher digests ordered string parts.
type Hasher interface {
	// Sum returns the full hex digest of parts.
	Sum(parts ...string) string

	// Short returns the first ShortLength characters of Sum.
	Short(parts ...string) string
}

// ShortLength is the number of hex characters returned by Short.
const ShortLength = 12

// separator cannot appear in a path, so part boundaries stay unambiguous.
const separator = 0

// SHA256 implements Hasher with SHA-256.
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a SHA-256 hasher.
func New() SHA256 {
	return SHA256{}
}

// Sum returns the hex SHA-256 of parts joined by NUL bytes.
func (SHA256) Sum(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{separator})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Short returns the first ShortLength characters of Sum.
func (c SHA256) Short(parts ...string) string {
	return c.Sum(parts...)[:ShortLength]
}

// Verify SHA256 implements Hasher
var _ Hasher = SHA256{}
