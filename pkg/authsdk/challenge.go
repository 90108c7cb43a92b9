package authsdk

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/aussiebroadwan/cognitoauth/pkg/cryptox"
)

// Challenge response keys.
const (
	KeyUsername             = "USERNAME"
	KeyPassword             = "PASSWORD"
	KeySecretHash           = "SECRET_HASH"
	KeyNewPassword          = "NEW_PASSWORD"
	KeyRefreshToken         = "REFRESH_TOKEN"
	KeySMSMFACode           = "SMS_MFA_CODE"
	KeySoftwareTokenMFACode = "SOFTWARE_TOKEN_MFA_CODE"
)

// NewPasswordChallengeResponse builds the answer to NEW_PASSWORD_REQUIRED.
// It holds exactly NEW_PASSWORD, USERNAME and SECRET_HASH.
func NewPasswordChallengeResponse(username, newPassword, clientID, clientSecret string) (map[string]string, error) {
	return challengeResponse(username, clientID, clientSecret, KeyNewPassword, newPassword)
}

// SMSMFAChallengeResponse builds the answer to SMS_MFA.
func SMSMFAChallengeResponse(username, code, clientID, clientSecret string) (map[string]string, error) {
	return challengeResponse(username, clientID, clientSecret, KeySMSMFACode, code)
}

// SoftwareTokenMFAChallengeResponse builds the answer to SOFTWARE_TOKEN_MFA.
func SoftwareTokenMFAChallengeResponse(username, code, clientID, clientSecret string) (map[string]string, error) {
	return challengeResponse(username, clientID, clientSecret, KeySoftwareTokenMFACode, code)
}

func challengeResponse(username, clientID, clientSecret, key, value string) (map[string]string, error) {
	hash, err := cryptox.SecretHash(username, clientID, clientSecret)
	if err != nil {
		return nil, err
	}
	return map[string]string{
		key:           value,
		KeyUsername:   username,
		KeySecretHash: hash,
	}, nil
}

// totpOpts are the parameters user pools use for software tokens.
var totpOpts = totp.ValidateOpts{
	Period:    30,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// TOTPCode derives the software token code for secret at the given time,
// for accounts that answer SOFTWARE_TOKEN_MFA without a human in the loop.
func TOTPCode(secret string, at time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(secret, at, totpOpts)
	if err != nil {
		return "", fmt.Errorf("authsdk: generate totp code: %w", err)
	}
	return code, nil
}
