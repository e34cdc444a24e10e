package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

// linkTokenBytes is the entropy of a public link token: 256 bits.
const linkTokenBytes = 32

// LinkTokens mints the opaque tokens that authenticate public recording links.
type LinkTokens struct {
	rand io.Reader
}

// NewLinkTokens returns a generator backed by crypto/rand.
func NewLinkTokens() *LinkTokens {
	return &LinkTokens{rand: rand.Reader}
}

// New returns a fresh URL-safe token (43 characters, no padding).
func (g *LinkTokens) New() (string, error) {
	b := make([]byte, linkTokenBytes)
	if _, err := io.ReadFull(g.rand, b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// ValidLinkToken reports whether s has the shape of a token minted by New.
// It lets callers reject malformed links without a lookup.
func ValidLinkToken(s string) bool {
	if len(s) != base64.RawURLEncoding.EncodedLen(linkTokenBytes) {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}
