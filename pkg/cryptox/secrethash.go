package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
)

var (
	ErrMissingClientID     = autherr.New(autherr.KindConfiguration, "client id is not set")
	ErrMissingClientSecret = autherr.New(autherr.KindConfiguration, "client secret is not set")
)

// SecretHash proves to the identity provider that the caller knows the app
// client secret. It is HMAC-SHA256 over username+clientID keyed with
// clientSecret, encoded as standard padded base64.
//
// The value is bound to the username, so it is recomputed for every request
// and never cached.
func SecretHash(username, clientID, clientSecret string) (string, error) {
	if clientID == "" {
		return "", ErrMissingClientID
	}
	if clientSecret == "" {
		return "", ErrMissingClientSecret
	}

	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username))
	mac.Write([]byte(clientID))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
