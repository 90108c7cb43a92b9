/*
Package authsdk is a client-side façade over an Amazon Cognito user pool.

# Overview

The package drives password and refresh-token logins, relays the multi-step
challenges a pool can raise, and verifies access tokens locally against the
pool's published keys. It never talks to the pool's API itself: the remote
calls go through an IdentityProvider supplied by the caller.

	client, err := authsdk.NewClient(authsdk.Config{
		Region:       "ap-southeast-2",
		UserPoolID:   "ap-southeast-2_AbCdEf123",
		ClientID:     "3n4b5urk1ft4fl3mg5e62d9ado",
		ClientSecret: os.Getenv("COGNITO_CLIENT_SECRET"),
	}, idp)

# Outcomes

Every call that begins or continues a login returns an Outcome. It is
either Completed, carrying the token bundle verbatim, or Challenged,
carrying the challenge name, the opaque session and its parameters:

	outcome, err := client.Login(ctx, "alice", password)
	if err != nil {
		return err
	}

	switch o := outcome.(type) {
	case authsdk.Completed:
		session := client.NewSession("alice", o.Result)
	case authsdk.Challenged:
		if o.Name == authsdk.ChallengeNewPasswordRequired {
			outcome, err = client.RespondToNewPasswordChallenge(ctx, "alice", newPassword, o.Session)
		}
	}

NEW_PASSWORD_REQUIRED, SMS_MFA and SOFTWARE_TOKEN_MFA have dedicated
responders. Any other challenge is handed back uninterpreted; answer it with
RespondToChallenge.

# Token Verification

VerifyAccessToken checks the signature, issuer, token_use and expiry of an
access token without a network round trip once the pool's keys are cached.
The keys are downloaded on first use and kept until InvalidateKeySet or
SetKeySet replaces them.

	claims, err := client.VerifyAccessToken(ctx, bearer)
	switch {
	case errors.Is(err, autherr.ErrTokenExpiry):
		// refresh and retry
	case err != nil:
		// reject
	}

# Sessions

A Session holds the tokens of a completed login and refreshes the access
token through the refresh-token flow shortly before it expires. Sessions are
safe for concurrent use.

# Errors

Failures raised here carry an autherr.Kind. A provider answer that is
neither a result nor a challenge is autherr.KindChallengeOutcome. Errors
returned by the IdentityProvider are wrapped and passed through unchanged;
nothing is retried.
*/
package authsdk
