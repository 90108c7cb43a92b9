package authsdk

import (
	"errors"

	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
)

var (
	// ErrNoOutcome is returned when the provider answers with neither an
	// authentication result nor a challenge.
	ErrNoOutcome = autherr.New(autherr.KindChallengeOutcome, "response has neither a result nor a challenge")

	// ErrNoRefreshResult is returned when a refresh yields no tokens.
	ErrNoRefreshResult = autherr.New(autherr.KindChallengeOutcome, "refresh returned no authentication result")

	// ErrNilProvider is returned by NewClient when no identity provider is
	// given.
	ErrNilProvider = autherr.New(autherr.KindConfiguration, "identity provider is nil")

	ErrNoRefreshToken = errors.New("authsdk: access token expired and no refresh token available")
	ErrNoAccessToken  = errors.New("authsdk: session has no access token")
)
