package authsdk_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/cognitoauth/pkg/authsdk"
	"github.com/aussiebroadwan/cognitoauth/pkg/authsdk/authsdktest"
	"github.com/aussiebroadwan/cognitoauth/pkg/autherr"
	"github.com/aussiebroadwan/cognitoauth/pkg/cryptox"
	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx/jwtxtest"
)

func testConfig() authsdk.Config {
	return authsdk.Config{
		Region:       jwtxtest.Region,
		UserPoolID:   jwtxtest.UserPoolID,
		ClientID:     "test-client",
		ClientSecret: "test-secret",
	}
}

// clock is a settable time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newClient(t *testing.T, idp authsdk.IdentityProvider, opts ...authsdk.Option) *authsdk.Client {
	t.Helper()
	c, err := authsdk.NewClient(testConfig(), idp, opts...)
	require.NoError(t, err)
	return c
}

func secretHash(t *testing.T, username string) string {
	t.Helper()
	cfg := testConfig()
	h, err := cryptox.SecretHash(username, cfg.ClientID, cfg.ClientSecret)
	require.NoError(t, err)
	return h
}

func TestLoginCompleted(t *testing.T) {
	t.Parallel()

	result := &authsdk.AuthenticationResult{AccessToken: "a", RefreshToken: "r", ExpiresIn: 3600}
	idp := &authsdktest.Provider{
		InitiateAuthFunc: func(_ context.Context, in authsdk.InitiateAuthInput) (*authsdk.RawAuthResponse, error) {
			return &authsdk.RawAuthResponse{AuthenticationResult: result}, nil
		},
	}
	client := newClient(t, idp)

	out, err := client.Login(context.Background(), "alice", "hunter2")
	require.NoError(t, err)
	require.Equal(t, authsdk.Completed{Result: *result}, out)

	in, ok := idp.Last("InitiateAuth")
	require.True(t, ok)
	require.Equal(t, authsdk.InitiateAuthInput{
		AuthFlow:   authsdk.AuthFlowUserPassword,
		ClientID:   "test-client",
		UserPoolID: jwtxtest.UserPoolID,
		AuthParameters: map[string]string{
			"USERNAME":    "alice",
			"PASSWORD":    "hunter2",
			"SECRET_HASH": secretHash(t, "alice"),
		},
	}, in)
}

func TestLoginNewPasswordDialog(t *testing.T) {
	t.Parallel()

	idp := &authsdktest.Provider{
		InitiateAuthFunc: func(context.Context, authsdk.InitiateAuthInput) (*authsdk.RawAuthResponse, error) {
			return &authsdk.RawAuthResponse{
				ChallengeName:       "NEW_PASSWORD_REQUIRED",
				Session:             "session-1",
				ChallengeParameters: map[string]string{"USER_ID_FOR_SRP": "alice"},
			}, nil
		},
		RespondToChallengeFunc: func(_ context.Context, in authsdk.RespondToChallengeInput) (*authsdk.RawAuthResponse, error) {
			if in.Session != "session-1" {
				return nil, errors.New("bad session")
			}
			return &authsdk.RawAuthResponse{
				AuthenticationResult: &authsdk.AuthenticationResult{AccessToken: "a", ExpiresIn: 60},
			}, nil
		},
	}
	client := newClient(t, idp)
	ctx := context.Background()

	out, err := client.Login(ctx, "alice", "temporary")
	require.NoError(t, err)

	ch, ok := out.(authsdk.Challenged)
	require.True(t, ok)
	require.Equal(t, authsdk.ChallengeNewPasswordRequired, ch.Name)
	require.Equal(t, "alice", ch.Parameters["USER_ID_FOR_SRP"])

	out, err = client.RespondToNewPasswordChallenge(ctx, "alice", "permanent", ch.Session)
	require.NoError(t, err)
	require.IsType(t, authsdk.Completed{}, out)

	in, _ := idp.Last("RespondToChallenge")
	require.Equal(t, authsdk.RespondToChallengeInput{
		ChallengeName: authsdk.ChallengeNewPasswordRequired,
		ClientID:      "test-client",
		Session:       "session-1",
		ChallengeResponses: map[string]string{
			"NEW_PASSWORD": "permanent",
			"USERNAME":     "alice",
			"SECRET_HASH":  secretHash(t, "alice"),
		},
	}, in)
}

func TestRespondToMFAChallenges(t *testing.T) {
	t.Parallel()

	idp := &authsdktest.Provider{
		RespondToChallengeFunc: func(context.Context, authsdk.RespondToChallengeInput) (*authsdk.RawAuthResponse, error) {
			return &authsdk.RawAuthResponse{AuthenticationResult: &authsdk.AuthenticationResult{AccessToken: "a"}}, nil
		},
	}
	client := newClient(t, idp)
	ctx := context.Background()

	_, err := client.RespondToSMSMFAChallenge(ctx, "bob", "111222", "s")
	require.NoError(t, err)
	in, _ := idp.Last("RespondToChallenge")
	require.Equal(t, authsdk.ChallengeSMSMFA, in.(authsdk.RespondToChallengeInput).ChallengeName)
	require.Equal(t, "111222", in.(authsdk.RespondToChallengeInput).ChallengeResponses["SMS_MFA_CODE"])

	code, err := authsdk.TOTPCode("GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ", time.Unix(59, 0))
	require.NoError(t, err)
	_, err = client.RespondToSoftwareTokenMFAChallenge(ctx, "bob", code, "s")
	require.NoError(t, err)
	in, _ = idp.Last("RespondToChallenge")
	require.Equal(t, authsdk.ChallengeSoftwareTokenMFA, in.(authsdk.RespondToChallengeInput).ChallengeName)
	require.Equal(t, "287082", in.(authsdk.RespondToChallengeInput).ChallengeResponses["SOFTWARE_TOKEN_MFA_CODE"])
}

func TestRespondToChallengePassesUnknownChallengesThrough(t *testing.T) {
	t.Parallel()

	idp := &authsdktest.Provider{
		RespondToChallengeFunc: func(context.Context, authsdk.RespondToChallengeInput) (*authsdk.RawAuthResponse, error) {
			return &authsdk.RawAuthResponse{ChallengeName: "SELECT_MFA_TYPE", Session: "next"}, nil
		},
	}
	client := newClient(t, idp)

	out, err := client.RespondToChallenge(context.Background(), authsdk.ChallengeCustom, "s", map[string]string{"ANSWER": "42"})
	require.NoError(t, err)
	require.Equal(t, authsdk.Challenged{
		Name:       authsdk.ChallengeSelectMFAType,
		Session:    "next",
		Parameters: map[string]string{},
	}, out)
}

func TestLoginNoOutcome(t *testing.T) {
	t.Parallel()

	idp := &authsdktest.Provider{
		InitiateAuthFunc: func(context.Context, authsdk.InitiateAuthInput) (*authsdk.RawAuthResponse, error) {
			return &authsdk.RawAuthResponse{}, nil
		},
	}
	client := newClient(t, idp)

	out, err := client.Login(context.Background(), "alice", "pw")
	require.Nil(t, out)
	require.ErrorIs(t, err, authsdk.ErrNoOutcome)
	require.Equal(t, autherr.KindChallengeOutcome, autherr.KindOf(err))
}

func TestProviderErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	boom := errors.New("NotAuthorizedException: Incorrect username or password.")
	idp := &authsdktest.Provider{
		InitiateAuthFunc: func(context.Context, authsdk.InitiateAuthInput) (*authsdk.RawAuthResponse, error) {
			return nil, boom
		},
		ChangePasswordFunc: func(context.Context, authsdk.ChangePasswordInput) error { return boom },
	}
	client := newClient(t, idp)
	ctx := context.Background()

	_, err := client.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, boom)
	require.Equal(t, autherr.KindUnknown, autherr.KindOf(err))

	require.ErrorIs(t, client.ChangePassword(ctx, "token", "a", "b"), boom)

	// Unscripted calls surface the fake's own error.
	_, err = client.ForgotPassword(ctx, "alice")
	require.ErrorIs(t, err, authsdktest.ErrUnscripted)
	require.Equal(t, 1, idp.Count("InitiateAuth"))
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("returns the result verbatim", func(t *testing.T) {
		want := &authsdk.AuthenticationResult{AccessToken: "a2", IdToken: "i2", ExpiresIn: 3600, TokenType: "Bearer"}
		idp := &authsdktest.Provider{
			RefreshTokenFunc: func(context.Context, authsdk.RefreshTokenInput) (*authsdk.AuthenticationResult, error) {
				return want, nil
			},
		}
		client := newClient(t, idp)

		got, err := client.Refresh(context.Background(), "alice", "r1")
		require.NoError(t, err)
		require.Same(t, want, got)

		in, _ := idp.Last("RefreshToken")
		require.Equal(t, authsdk.RefreshTokenInput{
			ClientID:   "test-client",
			UserPoolID: jwtxtest.UserPoolID,
			AuthParameters: map[string]string{
				"USERNAME":      "alice",
				"REFRESH_TOKEN": "r1",
				"SECRET_HASH":   secretHash(t, "alice"),
			},
		}, in)
	})

	t.Run("no result", func(t *testing.T) {
		for _, res := range []*authsdk.AuthenticationResult{nil, {}} {
			idp := &authsdktest.Provider{
				RefreshTokenFunc: func(context.Context, authsdk.RefreshTokenInput) (*authsdk.AuthenticationResult, error) {
					return res, nil
				},
			}
			client := newClient(t, idp)

			_, err := client.Refresh(context.Background(), "alice", "r1")
			require.ErrorIs(t, err, authsdk.ErrNoRefreshResult)
			require.ErrorIs(t, err, autherr.ErrChallengeOutcome)
		}
	})
}

func TestAccountOperations(t *testing.T) {
	t.Parallel()

	idp := &authsdktest.Provider{
		SignUpFunc: func(_ context.Context, in authsdk.SignUpInput) (*authsdk.SignUpResult, error) {
			return &authsdk.SignUpResult{UserSub: "sub-" + in.Username}, nil
		},
		ConfirmSignUpFunc: func(context.Context, authsdk.ConfirmSignUpInput) error { return nil },
		ForgotPasswordFunc: func(context.Context, authsdk.ForgotPasswordInput) (*authsdk.CodeDeliveryDetails, error) {
			return &authsdk.CodeDeliveryDetails{DeliveryMedium: "EMAIL", Destination: "a***@e***.com"}, nil
		},
		ConfirmForgotPasswordFunc: func(context.Context, authsdk.ConfirmForgotPasswordInput) error { return nil },
		ChangePasswordFunc:        func(context.Context, authsdk.ChangePasswordInput) error { return nil },
	}
	client := newClient(t, idp)
	ctx := context.Background()
	hash := secretHash(t, "carol")

	res, err := client.SignUp(ctx, "carol", "pw", map[string]string{"email": "carol@example.com"})
	require.NoError(t, err)
	require.Equal(t, "sub-carol", res.UserSub)
	in, _ := idp.Last("SignUp")
	require.Equal(t, hash, in.(authsdk.SignUpInput).SecretHash)
	require.Equal(t, "carol@example.com", in.(authsdk.SignUpInput).UserAttributes["email"])

	require.NoError(t, client.ConfirmSignUp(ctx, "carol", "123456"))
	in, _ = idp.Last("ConfirmSignUp")
	require.Equal(t, authsdk.ConfirmSignUpInput{
		ClientID: "test-client", SecretHash: hash, Username: "carol", ConfirmationCode: "123456",
	}, in)

	details, err := client.ForgotPassword(ctx, "carol")
	require.NoError(t, err)
	require.Equal(t, "EMAIL", details.DeliveryMedium)

	require.NoError(t, client.ConfirmForgotPassword(ctx, "carol", "654321", "new-pw"))
	in, _ = idp.Last("ConfirmForgotPassword")
	require.Equal(t, "new-pw", in.(authsdk.ConfirmForgotPasswordInput).Password)

	require.NoError(t, client.ChangePassword(ctx, "access-token", "old", "new"))
	in, _ = idp.Last("ChangePassword")
	require.Equal(t, authsdk.ChangePasswordInput{
		AccessToken: "access-token", PreviousPassword: "old", ProposedPassword: "new",
	}, in)
}

func TestVerifyAccessToken(t *testing.T) {
	t.Parallel()

	now := time.Unix(1_700_000_000, 0)
	signer := jwtxtest.NewSigner(t, "k1")
	client := newClient(t, &authsdktest.Provider{},
		authsdk.WithKeySet(jwtxtest.KeySet(signer)),
		authsdk.WithClock(func() time.Time { return now }),
	)
	require.True(t, client.KeySetCached())

	token := signer.Sign(t, jwtxtest.AccessClaims("alice", now.Add(time.Hour)))

	claims, err := client.VerifyAccessToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "alice", claims.Username)

	username, err := client.Username(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "alice", username)

	expired := signer.Sign(t, jwtxtest.AccessClaims("alice", now.Add(-time.Second)))
	_, err = client.Username(context.Background(), expired)
	require.ErrorIs(t, err, autherr.ErrTokenExpiry)

	other := jwtxtest.NewSigner(t, "k2")
	client.SetKeySet(jwtxtest.KeySet(other))
	_, err = client.Username(context.Background(), token)
	require.ErrorIs(t, err, jwtx.ErrSignature)
}

func TestKeysDownloadedThroughDirectory(t *testing.T) {
	t.Parallel()

	signer := jwtxtest.NewSigner(t, "k1")
	srv := jwtxtest.NewJWKSServer(t, jwtxtest.KeySet(signer))
	dir := jwtx.NewKeyDirectory(srv.Client())
	dir.BaseURL = srv.URL

	first := newClient(t, &authsdktest.Provider{}, authsdk.WithKeyDirectory(dir))
	second := newClient(t, &authsdktest.Provider{}, authsdk.WithKeyDirectory(dir))
	require.False(t, first.KeySetCached())

	require.NoError(t, first.WarmKeys(context.Background()))
	require.True(t, second.KeySetCached())

	token := signer.Sign(t, jwtxtest.AccessClaims("alice", time.Now().Add(time.Hour)))
	_, err := second.Username(context.Background(), token)
	require.NoError(t, err)
	require.EqualValues(t, 1, srv.Hits())

	first.InvalidateKeySet()
	require.False(t, second.KeySetCached())
	_, err = second.Username(context.Background(), token)
	require.NoError(t, err)
	require.EqualValues(t, 2, srv.Hits())
}
