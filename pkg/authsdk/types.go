package authsdk

// ============================================================================
// Provider Responses
// ============================================================================

// AuthenticationResult is the token bundle of a completed login. It is
// passed through verbatim.
type AuthenticationResult struct {
	AccessToken  string `json:"AccessToken,omitempty"`
	IdToken      string `json:"IdToken,omitempty"`
	RefreshToken string `json:"RefreshToken,omitempty"`
	TokenType    string `json:"TokenType,omitempty"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int32 `json:"ExpiresIn,omitempty"`
}

// IsZero reports whether the result carries no tokens at all.
func (r *AuthenticationResult) IsZero() bool {
	return r == nil || *r == AuthenticationResult{}
}

// RawAuthResponse is the provider's answer to InitiateAuth and
// RespondToChallenge. At most one of AuthenticationResult and ChallengeName
// is expected to be set; Normalize turns it into an Outcome.
type RawAuthResponse struct {
	AuthenticationResult *AuthenticationResult `json:"AuthenticationResult,omitempty"`
	ChallengeName        string                `json:"ChallengeName,omitempty"`
	Session              string                `json:"Session,omitempty"`
	ChallengeParameters  map[string]string     `json:"ChallengeParameters,omitempty"`
}

// CodeDeliveryDetails says where a confirmation code was sent.
type CodeDeliveryDetails struct {
	AttributeName  string `json:"AttributeName,omitempty"`
	DeliveryMedium string `json:"DeliveryMedium,omitempty"`
	Destination    string `json:"Destination,omitempty"`
}

// SignUpResult is the provider's answer to SignUp.
type SignUpResult struct {
	UserConfirmed       bool                 `json:"UserConfirmed"`
	UserSub             string               `json:"UserSub,omitempty"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails,omitempty"`
}

// ============================================================================
// Provider Requests
// ============================================================================

// AuthFlow names an InitiateAuth flow.
type AuthFlow string

const (
	AuthFlowUserPassword AuthFlow = "USER_PASSWORD_AUTH"
	AuthFlowRefreshToken AuthFlow = "REFRESH_TOKEN_AUTH"
)

// InitiateAuthInput starts a login.
type InitiateAuthInput struct {
	AuthFlow   AuthFlow
	ClientID   string
	UserPoolID string

	// AuthParameters holds USERNAME, PASSWORD and SECRET_HASH.
	AuthParameters map[string]string
}

// RespondToChallengeInput answers a challenge raised by a previous call.
type RespondToChallengeInput struct {
	ChallengeName      ChallengeName
	ClientID           string
	Session            string
	ChallengeResponses map[string]string
}

// RefreshTokenInput exchanges a refresh token for new tokens.
type RefreshTokenInput struct {
	ClientID   string
	UserPoolID string

	// AuthParameters holds USERNAME, REFRESH_TOKEN and SECRET_HASH.
	AuthParameters map[string]string
}

// ChangePasswordInput changes the password of the token's owner.
type ChangePasswordInput struct {
	AccessToken      string
	PreviousPassword string
	ProposedPassword string
}

// SignUpInput registers a new user.
type SignUpInput struct {
	ClientID       string
	SecretHash     string
	Username       string
	Password       string
	UserAttributes map[string]string
}

// ConfirmSignUpInput confirms a registration with the code sent to the user.
type ConfirmSignUpInput struct {
	ClientID         string
	SecretHash       string
	Username         string
	ConfirmationCode string
}

// ForgotPasswordInput asks the pool to send a password reset code.
type ForgotPasswordInput struct {
	ClientID   string
	SecretHash string
	Username   string
}

// ConfirmForgotPasswordInput sets a new password using a reset code.
type ConfirmForgotPasswordInput struct {
	ClientID         string
	SecretHash       string
	Username         string
	ConfirmationCode string
	Password         string
}
