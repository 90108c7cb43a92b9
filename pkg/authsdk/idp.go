package authsdk

import "context"

// IdentityProvider performs the remote user pool calls. Implementations own
// the transport, the wire format and any retry policy; the Client only
// builds inputs and interprets outputs.
type IdentityProvider interface {
	InitiateAuth(ctx context.Context, in InitiateAuthInput) (*RawAuthResponse, error)
	RespondToChallenge(ctx context.Context, in RespondToChallengeInput) (*RawAuthResponse, error)

	// RefreshToken has no challenge path.
	RefreshToken(ctx context.Context, in RefreshTokenInput) (*AuthenticationResult, error)

	ChangePassword(ctx context.Context, in ChangePasswordInput) error
	SignUp(ctx context.Context, in SignUpInput) (*SignUpResult, error)
	ConfirmSignUp(ctx context.Context, in ConfirmSignUpInput) error
	ForgotPassword(ctx context.Context, in ForgotPasswordInput) (*CodeDeliveryDetails, error)
	ConfirmForgotPassword(ctx context.Context, in ConfirmForgotPasswordInput) error
}
