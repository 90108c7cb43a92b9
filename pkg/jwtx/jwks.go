package jwtx

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-jose/go-jose/v4"

	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
)

const (
	// cognitoHostFormat is the user pool endpoint for a region.
	cognitoHostFormat = "https://cognito-idp.%s.amazonaws.com"

	// jwksPath is appended to the issuer to locate the published keys.
	jwksPath = "/.well-known/jwks.json"
)

// IssuerURL is the iss every access token from the pool must carry.
func IssuerURL(region, userPoolID string) string {
	return fmt.Sprintf(cognitoHostFormat, region) + "/" + userPoolID
}

// JWKSURL is where the pool publishes its signing keys.
func JWKSURL(region, userPoolID string) string {
	return IssuerURL(region, userPoolID) + jwksPath
}

// jwksURLFromBase builds the key URL against an alternate host, used when
// the directory is pointed at a mirror or a test server.
func jwksURLFromBase(base, userPoolID string) string {
	return strings.TrimSuffix(base, "/") + "/" + userPoolID + jwksPath
}

// ParseJWKS decodes a JWKS document. Keys go-jose cannot parse fail the
// whole document. A set with no keys, or with private key material, is
// rejected. Every failure is of kind autherr.KindKeyFetch.
func ParseJWKS(raw []byte) (*KeySet, error) {
	var doc jose.JSONWebKeySet
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, autherr.Wrap(autherr.KindKeyFetch, ErrInvalidJWKS.Reason, err)
	}
	if len(doc.Keys) == 0 {
		return nil, ErrEmptyJWKS
	}

	keys := make([]Key, 0, len(doc.Keys))
	for i, jwk := range doc.Keys {
		if !jwk.Valid() || !jwk.IsPublic() {
			return nil, autherr.Wrap(autherr.KindKeyFetch, ErrInvalidJWKS.Reason,
				fmt.Errorf("key %d (kid %q) is not a valid public key", i, jwk.KeyID))
		}
		if jwk.Use != "" && jwk.Use != "sig" {
			continue
		}
		keys = append(keys, Key{
			KeyID:     jwk.KeyID,
			Algorithm: jwk.Algorithm,
			Use:       jwk.Use,
			Public:    jwk.Key,
		})
	}
	if len(keys) == 0 {
		return nil, ErrEmptyJWKS
	}

	return NewKeySet(keys...), nil
}
