// Package authsdktest provides a scriptable authsdk.IdentityProvider.
package authsdktest

import (
	"context"
	"errors"
	"sync"

	"github.com/aussiebroadwan/cognitoauth/pkg/authsdk"
)

// ErrUnscripted is returned by every call whose func is not set.
var ErrUnscripted = errors.New("authsdktest: call not scripted")

// Call records one invocation and its input.
type Call struct {
	Method string
	Input  any
}

// Provider answers each call with the matching func field and records every
// call. It is safe for concurrent use.
type Provider struct {
	InitiateAuthFunc          func(context.Context, authsdk.InitiateAuthInput) (*authsdk.RawAuthResponse, error)
	RespondToChallengeFunc    func(context.Context, authsdk.RespondToChallengeInput) (*authsdk.RawAuthResponse, error)
	RefreshTokenFunc          func(context.Context, authsdk.RefreshTokenInput) (*authsdk.AuthenticationResult, error)
	ChangePasswordFunc        func(context.Context, authsdk.ChangePasswordInput) error
	SignUpFunc                func(context.Context, authsdk.SignUpInput) (*authsdk.SignUpResult, error)
	ConfirmSignUpFunc         func(context.Context, authsdk.ConfirmSignUpInput) error
	ForgotPasswordFunc        func(context.Context, authsdk.ForgotPasswordInput) (*authsdk.CodeDeliveryDetails, error)
	ConfirmForgotPasswordFunc func(context.Context, authsdk.ConfirmForgotPasswordInput) error

	mu    sync.Mutex
	calls []Call
}

var _ authsdk.IdentityProvider = (*Provider)(nil)

func (p *Provider) record(method string, in any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, Call{Method: method, Input: in})
}

// Calls returns every call received so far.
func (p *Provider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}

// Count returns how many times method was called.
func (p *Provider) Count(method string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Last returns the input of the most recent call to method.
func (p *Provider) Last(method string) (any, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := len(p.calls) - 1; i >= 0; i-- {
		if p.calls[i].Method == method {
			return p.calls[i].Input, true
		}
	}
	return nil, false
}

func (p *Provider) InitiateAuth(ctx context.Context, in authsdk.InitiateAuthInput) (*authsdk.RawAuthResponse, error) {
	p.record("InitiateAuth", in)
	if p.InitiateAuthFunc == nil {
		return nil, ErrUnscripted
	}
	return p.InitiateAuthFunc(ctx, in)
}

func (p *Provider) RespondToChallenge(ctx context.Context, in authsdk.RespondToChallengeInput) (*authsdk.RawAuthResponse, error) {
	p.record("RespondToChallenge", in)
	if p.RespondToChallengeFunc == nil {
		return nil, ErrUnscripted
	}
	return p.RespondToChallengeFunc(ctx, in)
}

func (p *Provider) RefreshToken(ctx context.Context, in authsdk.RefreshTokenInput) (*authsdk.AuthenticationResult, error) {
	p.record("RefreshToken", in)
	if p.RefreshTokenFunc == nil {
		return nil, ErrUnscripted
	}
	return p.RefreshTokenFunc(ctx, in)
}

func (p *Provider) ChangePassword(ctx context.Context, in authsdk.ChangePasswordInput) error {
	p.record("ChangePassword", in)
	if p.ChangePasswordFunc == nil {
		return ErrUnscripted
	}
	return p.ChangePasswordFunc(ctx, in)
}

func (p *Provider) SignUp(ctx context.Context, in authsdk.SignUpInput) (*authsdk.SignUpResult, error) {
	p.record("SignUp", in)
	if p.SignUpFunc == nil {
		return nil, ErrUnscripted
	}
	return p.SignUpFunc(ctx, in)
}

func (p *Provider) ConfirmSignUp(ctx context.Context, in authsdk.ConfirmSignUpInput) error {
	p.record("ConfirmSignUp", in)
	if p.ConfirmSignUpFunc == nil {
		return ErrUnscripted
	}
	return p.ConfirmSignUpFunc(ctx, in)
}

func (p *Provider) ForgotPassword(ctx context.Context, in authsdk.ForgotPasswordInput) (*authsdk.CodeDeliveryDetails, error) {
	p.record("ForgotPassword", in)
	if p.ForgotPasswordFunc == nil {
		return nil, ErrUnscripted
	}
	return p.ForgotPasswordFunc(ctx, in)
}

func (p *Provider) ConfirmForgotPassword(ctx context.Context, in authsdk.ConfirmForgotPasswordInput) error {
	p.record("ConfirmForgotPassword", in)
	if p.ConfirmForgotPasswordFunc == nil {
		return ErrUnscripted
	}
	return p.ConfirmForgotPasswordFunc(ctx, in)
}
