package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// fingerprintPrefixLen is how much of a fingerprint ShortFingerprint keeps.
const fingerprintPrefixLen = 12

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token.
// Bearer tokens must never reach the logs, so log lines carry this value
// when a failure has to be correlated with a specific token.
//
// The fingerprint is returned as a base64url-encoded string (43 chars).
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// ShortFingerprint is FingerprintToken cut down to a log-friendly prefix.
// An empty token yields an empty string.
func ShortFingerprint(token string) string {
	if token == "" {
		return ""
	}
	return FingerprintToken(token)[:fingerprintPrefixLen]
}
