package authsdk

// ChallengeName identifies a challenge raised by the pool.
type ChallengeName string

const (
	ChallengeNewPasswordRequired ChallengeName = "NEW_PASSWORD_REQUIRED"
	ChallengeSMSMFA              ChallengeName = "SMS_MFA"
	ChallengeSoftwareTokenMFA    ChallengeName = "SOFTWARE_TOKEN_MFA"
	ChallengeEmailOTP            ChallengeName = "EMAIL_OTP"
	ChallengeSelectMFAType       ChallengeName = "SELECT_MFA_TYPE"
	ChallengeMFASetup            ChallengeName = "MFA_SETUP"
	ChallengeCustom              ChallengeName = "CUSTOM_CHALLENGE"
	ChallengePasswordVerifier    ChallengeName = "PASSWORD_VERIFIER"
	ChallengeDeviceSRPAuth       ChallengeName = "DEVICE_SRP_AUTH"
)

// Outcome is the result of a call that begins or continues a login. It is
// exactly one of Completed or Challenged.
type Outcome interface {
	outcome()
}

// Completed carries the tokens of a finished login.
type Completed struct {
	Result AuthenticationResult
}

// Challenged carries a challenge that must be answered before the login
// can finish. Session is opaque and must be echoed back with the answer.
type Challenged struct {
	Name       ChallengeName
	Session    string
	Parameters map[string]string
}

func (Completed) outcome()  {}
func (Challenged) outcome() {}

// Normalize classifies a provider response. A result wins over a challenge;
// a response with neither fails with ErrNoOutcome.
func Normalize(raw *RawAuthResponse) (Outcome, error) {
	if raw == nil {
		return nil, ErrNoOutcome
	}

	if !raw.AuthenticationResult.IsZero() {
		return Completed{Result: *raw.AuthenticationResult}, nil
	}

	if raw.ChallengeName != "" {
		params := make(map[string]string, len(raw.ChallengeParameters))
		for k, v := range raw.ChallengeParameters {
			params[k] = v
		}
		return Challenged{
			Name:       ChallengeName(raw.ChallengeName),
			Session:    raw.Session,
			Parameters: params,
		}, nil
	}

	return nil, ErrNoOutcome
}

// OutcomeState names the terminal state an Outcome represents. A nil
// Outcome is "malformed".
func OutcomeState(o Outcome) string {
	switch o.(type) {
	case Completed:
		return "completed"
	case Challenged:
		return "challenged"
	default:
		return "malformed"
	}
}
