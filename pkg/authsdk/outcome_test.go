package authsdk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/cognitoauth/pkg/authsdk"
	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	result := &authsdk.AuthenticationResult{
		AccessToken:  "access",
		IdToken:      "id",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    3600,
	}

	t.Run("completed", func(t *testing.T) {
		out, err := authsdk.Normalize(&authsdk.RawAuthResponse{AuthenticationResult: result})
		require.NoError(t, err)
		require.Equal(t, authsdk.Completed{Result: *result}, out)
		require.Equal(t, "completed", authsdk.OutcomeState(out))
	})

	t.Run("challenged without parameters", func(t *testing.T) {
		out, err := authsdk.Normalize(&authsdk.RawAuthResponse{ChallengeName: "SMS_MFA", Session: "s1"})
		require.NoError(t, err)
		require.Equal(t, authsdk.Challenged{
			Name:       authsdk.ChallengeSMSMFA,
			Session:    "s1",
			Parameters: map[string]string{},
		}, out)
		require.Equal(t, "challenged", authsdk.OutcomeState(out))
	})

	t.Run("challenged with parameters", func(t *testing.T) {
		params := map[string]string{"CODE_DELIVERY_DESTINATION": "+61***123"}
		out, err := authsdk.Normalize(&authsdk.RawAuthResponse{
			ChallengeName:       "CUSTOM_CHALLENGE",
			Session:             "s2",
			ChallengeParameters: params,
		})
		require.NoError(t, err)

		ch, ok := out.(authsdk.Challenged)
		require.True(t, ok)
		require.Equal(t, authsdk.ChallengeCustom, ch.Name)
		require.Equal(t, params, ch.Parameters)

		// The outcome owns its own copy.
		params["extra"] = "x"
		require.NotContains(t, ch.Parameters, "extra")
	})

	t.Run("result wins over challenge", func(t *testing.T) {
		out, err := authsdk.Normalize(&authsdk.RawAuthResponse{
			AuthenticationResult: result,
			ChallengeName:        "SMS_MFA",
		})
		require.NoError(t, err)
		require.IsType(t, authsdk.Completed{}, out)
	})

	t.Run("empty result falls through to challenge", func(t *testing.T) {
		out, err := authsdk.Normalize(&authsdk.RawAuthResponse{
			AuthenticationResult: &authsdk.AuthenticationResult{},
			ChallengeName:        "NEW_PASSWORD_REQUIRED",
			Session:              "s3",
		})
		require.NoError(t, err)
		require.IsType(t, authsdk.Challenged{}, out)
	})

	t.Run("neither", func(t *testing.T) {
		for _, raw := range []*authsdk.RawAuthResponse{
			{},
			{Session: "orphan"},
			{AuthenticationResult: &authsdk.AuthenticationResult{}},
			nil,
		} {
			out, err := authsdk.Normalize(raw)
			require.Nil(t, out)
			require.ErrorIs(t, err, authsdk.ErrNoOutcome)
			require.ErrorIs(t, err, autherr.ErrChallengeOutcome)
		}
		require.Equal(t, "malformed", authsdk.OutcomeState(nil))
	})
}
