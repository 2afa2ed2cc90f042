package utils

import (
	"crypto/rand"
	"fmt"
)

// trackingAlphabet excludes ambiguous characters (0/O, 1/I/L) so codes
// survive being read aloud or written on a label.
const trackingAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const trackingCodeLength = 8

// GenerateTrackingCode produces a public tracking code of the form
// "TK-XXXXXXXX". Uniqueness is enforced by the parcels table constraint;
// callers retry on conflict.
func GenerateTrackingCode() (string, error) {
	buf := make([]byte, trackingCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}

	return "TK-" + string(buf), nil
}
