package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Alphabet for confirmation codes. 0/O and 1/I are excluded so codes
// read back unambiguously over the phone.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateConfirmationCode returns a random customer-facing code of
// the given length.
func GenerateConfirmationCode(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for codes; fall back
		// to a UUID-derived string instead of a weak source.
		return GenerateLongConfirmationCode()
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

// GenerateLongConfirmationCode returns a high-entropy fallback code
// used when short codes keep colliding.
func GenerateLongConfirmationCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:20]
}

// GenerateOrderRef builds a displayable order reference from the
// current time plus a random suffix, unique without a retry loop.
func GenerateOrderRef(now time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102150405"), strings.ToUpper(suffix))
}
