package jwtx

import "github.com/aussiebroadwan/cognitoauth/pkg/autherr"

// Verification failures. Each one is a reason-level sentinel: errors.Is
// matches it exactly, and it also matches the kind sentinel in autherr.
var (
	ErrMalformed     = autherr.New(autherr.KindTokenVerification, "malformed token")
	ErrSignature     = autherr.New(autherr.KindTokenVerification, "could not verify token")
	ErrIssuer        = autherr.New(autherr.KindTokenVerification, "invalid iss")
	ErrTokenUse      = autherr.New(autherr.KindTokenVerification, "invalid token_use")
	ErrMissingExpiry = autherr.New(autherr.KindTokenVerification, "invalid exp")

	// ErrExpired is the only failure of kind autherr.KindTokenExpiry: the
	// token was genuine but its exp is in the past.
	ErrExpired = autherr.New(autherr.KindTokenExpiry, "invalid exp")
)

// Key directory failures.
var (
	ErrInvalidJWKS = autherr.New(autherr.KindKeyFetch, "malformed key set")
	ErrEmptyJWKS   = autherr.New(autherr.KindKeyFetch, "key set has no signature keys")
	ErrJWKSTooBig  = autherr.New(autherr.KindKeyFetch, "key set response too large")

	ErrMissingRegion = autherr.New(autherr.KindConfiguration, "region is not set")
	ErrMissingPool   = autherr.New(autherr.KindConfiguration, "user pool id is not set")
)
