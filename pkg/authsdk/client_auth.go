package authsdk

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/cognitoauth/pkg/slogx"
)

// Login starts a USER_PASSWORD_AUTH login.
func (c *Client) Login(ctx context.Context, username, password string) (Outcome, error) {
	hash, err := c.secretHash(username)
	if err != nil {
		return nil, err
	}

	raw, err := c.idp.InitiateAuth(ctx, InitiateAuthInput{
		AuthFlow:   AuthFlowUserPassword,
		ClientID:   c.cfg.ClientID,
		UserPoolID: c.cfg.UserPoolID,
		AuthParameters: map[string]string{
			KeyUsername:   username,
			KeyPassword:   password,
			KeySecretHash: hash,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("authsdk: initiate auth: %w", err)
	}

	return c.normalize(ctx, "initiate_auth", raw)
}

// RespondToChallenge answers any challenge with caller-built responses.
func (c *Client) RespondToChallenge(ctx context.Context, name ChallengeName, session string, responses map[string]string) (Outcome, error) {
	raw, err := c.idp.RespondToChallenge(ctx, RespondToChallengeInput{
		ChallengeName:      name,
		ClientID:           c.cfg.ClientID,
		Session:            session,
		ChallengeResponses: responses,
	})
	if err != nil {
		return nil, fmt.Errorf("authsdk: respond to %s: %w", name, err)
	}

	return c.normalize(ctx, "respond_to_challenge", raw)
}

// RespondToNewPasswordChallenge answers NEW_PASSWORD_REQUIRED.
func (c *Client) RespondToNewPasswordChallenge(ctx context.Context, username, newPassword, session string) (Outcome, error) {
	responses, err := NewPasswordChallengeResponse(username, newPassword, c.cfg.ClientID, c.cfg.ClientSecret)
	if err != nil {
		return nil, err
	}
	return c.RespondToChallenge(ctx, ChallengeNewPasswordRequired, session, responses)
}

// RespondToSMSMFAChallenge answers SMS_MFA with the code texted to the user.
func (c *Client) RespondToSMSMFAChallenge(ctx context.Context, username, code, session string) (Outcome, error) {
	responses, err := SMSMFAChallengeResponse(username, code, c.cfg.ClientID, c.cfg.ClientSecret)
	if err != nil {
		return nil, err
	}
	return c.RespondToChallenge(ctx, ChallengeSMSMFA, session, responses)
}

// RespondToSoftwareTokenMFAChallenge answers SOFTWARE_TOKEN_MFA. See
// TOTPCode for deriving code from an enrolled secret.
func (c *Client) RespondToSoftwareTokenMFAChallenge(ctx context.Context, username, code, session string) (Outcome, error) {
	responses, err := SoftwareTokenMFAChallengeResponse(username, code, c.cfg.ClientID, c.cfg.ClientSecret)
	if err != nil {
		return nil, err
	}
	return c.RespondToChallenge(ctx, ChallengeSoftwareTokenMFA, session, responses)
}

// Refresh exchanges a refresh token for new tokens. Refresh never raises a
// challenge; a response without tokens fails with ErrNoRefreshResult.
func (c *Client) Refresh(ctx context.Context, username, refreshToken string) (*AuthenticationResult, error) {
	hash, err := c.secretHash(username)
	if err != nil {
		return nil, err
	}

	res, err := c.idp.RefreshToken(ctx, RefreshTokenInput{
		ClientID:   c.cfg.ClientID,
		UserPoolID: c.cfg.UserPoolID,
		AuthParameters: map[string]string{
			KeyUsername:     username,
			KeyRefreshToken: refreshToken,
			KeySecretHash:   hash,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("authsdk: refresh token: %w", err)
	}
	if res.IsZero() {
		slogx.FromContext(ctx).Error("identity provider returned no tokens",
			"op", "refresh_token",
			"err", ErrNoRefreshResult,
		)
		return nil, ErrNoRefreshResult
	}

	return res, nil
}

func (c *Client) normalize(ctx context.Context, op string, raw *RawAuthResponse) (Outcome, error) {
	outcome, err := Normalize(raw)
	if err != nil {
		slogx.FromContext(ctx).Error("identity provider returned no outcome",
			"op", op,
			"state", OutcomeState(nil),
			"err", err,
		)
		return nil, err
	}

	if ch, ok := outcome.(Challenged); ok {
		slogx.FromContext(ctx).Debug("authentication challenged",
			"op", op,
			"challenge", string(ch.Name),
		)
	}
	return outcome, nil
}
