package authsdk_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/cognitoauth/pkg/authsdk"
	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
	"github.com/aussiebroadwan/cognitoauth/pkg/cryptox"
)

func TestNewPasswordChallengeResponse(t *testing.T) {
	t.Parallel()

	got, err := authsdk.NewPasswordChallengeResponse("alice", "n3w-Passw0rd!", "client-id", "client-secret")
	require.NoError(t, err)

	want, err := cryptox.SecretHash("alice", "client-id", "client-secret")
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"NEW_PASSWORD": "n3w-Passw0rd!",
		"USERNAME":     "alice",
		"SECRET_HASH":  want,
	}, got)
}

func TestMFAChallengeResponses(t *testing.T) {
	t.Parallel()

	sms, err := authsdk.SMSMFAChallengeResponse("bob", "123456", "cid", "secret")
	require.NoError(t, err)
	require.Len(t, sms, 3)
	require.Equal(t, "123456", sms["SMS_MFA_CODE"])
	require.Equal(t, "bob", sms["USERNAME"])

	totp, err := authsdk.SoftwareTokenMFAChallengeResponse("bob", "654321", "cid", "secret")
	require.NoError(t, err)
	require.Len(t, totp, 3)
	require.Equal(t, "654321", totp["SOFTWARE_TOKEN_MFA_CODE"])
	require.Equal(t, sms["SECRET_HASH"], totp["SECRET_HASH"])
}

func TestChallengeResponseMissingConfiguration(t *testing.T) {
	t.Parallel()

	_, err := authsdk.NewPasswordChallengeResponse("alice", "pw", "", "secret")
	require.ErrorIs(t, err, autherr.ErrConfiguration)

	_, err = authsdk.SMSMFAChallengeResponse("alice", "123456", "cid", "")
	require.ErrorIs(t, err, cryptox.ErrMissingClientSecret)
}

func TestTOTPCode(t *testing.T) {
	t.Parallel()

	// RFC 6238 SHA1 test seed "12345678901234567890", base32 encoded.
	const secret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

	code, err := authsdk.TOTPCode(secret, time.Unix(59, 0))
	require.NoError(t, err)
	require.Equal(t, "287082", code)

	code, err = authsdk.TOTPCode(secret, time.Unix(1111111109, 0))
	require.NoError(t, err)
	require.Equal(t, "081804", code)

	_, err = authsdk.TOTPCode("not base32!", time.Unix(59, 0))
	require.Error(t, err)
}
