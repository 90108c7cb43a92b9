package authsdk

import (
	"context"
	"fmt"
)

// ChangePassword changes the password of the access token's owner.
func (c *Client) ChangePassword(ctx context.Context, accessToken, previous, proposed string) error {
	err := c.idp.ChangePassword(ctx, ChangePasswordInput{
		AccessToken:      accessToken,
		PreviousPassword: previous,
		ProposedPassword: proposed,
	})
	if err != nil {
		return fmt.Errorf("authsdk: change password: %w", err)
	}
	return nil
}

// SignUp registers username with the given attributes.
func (c *Client) SignUp(ctx context.Context, username, password string, attributes map[string]string) (*SignUpResult, error) {
	hash, err := c.secretHash(username)
	if err != nil {
		return nil, err
	}

	res, err := c.idp.SignUp(ctx, SignUpInput{
		ClientID:       c.cfg.ClientID,
		SecretHash:     hash,
		Username:       username,
		Password:       password,
		UserAttributes: attributes,
	})
	if err != nil {
		return nil, fmt.Errorf("authsdk: sign up: %w", err)
	}
	return res, nil
}

// ConfirmSignUp confirms a registration with the code sent to the user.
func (c *Client) ConfirmSignUp(ctx context.Context, username, code string) error {
	hash, err := c.secretHash(username)
	if err != nil {
		return err
	}

	err = c.idp.ConfirmSignUp(ctx, ConfirmSignUpInput{
		ClientID:         c.cfg.ClientID,
		SecretHash:       hash,
		Username:         username,
		ConfirmationCode: code,
	})
	if err != nil {
		return fmt.Errorf("authsdk: confirm sign up: %w", err)
	}
	return nil
}

// ForgotPassword asks the pool to send username a reset code.
func (c *Client) ForgotPassword(ctx context.Context, username string) (*CodeDeliveryDetails, error) {
	hash, err := c.secretHash(username)
	if err != nil {
		return nil, err
	}

	details, err := c.idp.ForgotPassword(ctx, ForgotPasswordInput{
		ClientID:   c.cfg.ClientID,
		SecretHash: hash,
		Username:   username,
	})
	if err != nil {
		return nil, fmt.Errorf("authsdk: forgot password: %w", err)
	}
	return details, nil
}

// ConfirmForgotPassword sets a new password using the reset code.
func (c *Client) ConfirmForgotPassword(ctx context.Context, username, code, newPassword string) error {
	hash, err := c.secretHash(username)
	if err != nil {
		return err
	}

	err = c.idp.ConfirmForgotPassword(ctx, ConfirmForgotPasswordInput{
		ClientID:         c.cfg.ClientID,
		SecretHash:       hash,
		Username:         username,
		ConfirmationCode: code,
		Password:         newPassword,
	})
	if err != nil {
		return fmt.Errorf("authsdk: confirm forgot password: %w", err)
	}
	return nil
}
