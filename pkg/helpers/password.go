package helpers

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the bcrypt input limit. Longer passwords are truncated
// rather than rejected; this is a known, intentional limitation that trades
// effective entropy of very long passwords for a simple registration flow.
const MaxPasswordBytes = 72

// truncatePassword cuts the UTF-8 encoded password at MaxPasswordBytes.
// A partial multi-byte sequence left at the cut point is discarded, not
// replaced. The same normalization runs on both the hash and verify paths,
// otherwise no long password would ever verify.
func truncatePassword(plain string) []byte {
	b := []byte(plain)
	if len(b) <= MaxPasswordBytes {
		return b
	}
	b = b[:MaxPasswordBytes]
	for trimmed := 0; len(b) > 0 && trimmed < utf8.UTFMax-1; trimmed++ {
		r, size := utf8.DecodeLastRune(b)
		if r != utf8.RuneError || size != 1 {
			break
		}
		b = b[:len(b)-1]
	}
	return b
}

// HashPassword hashes the plain text password using bcrypt
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(truncatePassword(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CompareHashAndPassword compares a bcrypt hash with a plain password.
// A malformed stored hash yields false, never an error.
func CompareHashAndPassword(hash string, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(plain)) == nil
}
