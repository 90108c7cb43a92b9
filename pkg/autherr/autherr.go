// Package autherr defines the closed set of failure kinds reported by the
// cognitoauth packages.
//
// Every error returned by the verification core and the challenge handling
// carries exactly one Kind. Callers branch on the kind rather than on message
// text:
//
//	switch autherr.KindOf(err) {
//	case autherr.KindTokenExpiry:
//		// run the refresh-token flow
//	case autherr.KindTokenVerification:
//		// reject outright, ask the user to sign in again
//	}
//
// errors.Is works against both the kind sentinels in this package and the
// reason sentinels exported by jwtx and authsdk.
package autherr

import (
	"errors"
	"fmt"
)

// Kind classifies an authentication failure.
type Kind uint8

const (
	// KindUnknown is reported by KindOf for errors that did not originate here.
	KindUnknown Kind = iota

	// KindConfiguration means a required credential, region or pool
	// identifier is missing. Fatal to the calling operation.
	KindConfiguration

	// KindKeyFetch means the verification key set could not be retrieved or
	// parsed. Callers may retry with backoff.
	KindKeyFetch

	// KindTokenVerification means the token is malformed, carries a bad
	// signature, the wrong issuer or the wrong token_use. Never retryable.
	KindTokenVerification

	// KindTokenExpiry means the token is otherwise valid but expired. The
	// natural recovery is the refresh-token flow.
	KindTokenExpiry

	// KindChallengeOutcome means the identity provider answered with neither
	// a result nor a challenge.
	KindChallengeOutcome
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindKeyFetch:
		return "key fetch"
	case KindTokenVerification:
		return "token verification"
	case KindTokenExpiry:
		return "token expiry"
	case KindChallengeOutcome:
		return "challenge outcome"
	default:
		return "unknown"
	}
}

// Error is the concrete error type for every Kind.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

// New returns an Error of the given kind with a fixed reason.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Wrap returns an Error of the given kind that wraps cause.
func Wrap(kind Kind, reason string, cause error) *Error {
	return &Error{Kind: kind, Reason: reason, Err: cause}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind. A target without a reason
// matches every reason of that kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

// Kind sentinels, for use with errors.Is.
var (
	ErrConfiguration     = &Error{Kind: KindConfiguration}
	ErrKeyFetch          = &Error{Kind: KindKeyFetch}
	ErrTokenVerification = &Error{Kind: KindTokenVerification}
	ErrTokenExpiry       = &Error{Kind: KindTokenExpiry}
	ErrChallengeOutcome  = &Error{Kind: KindChallengeOutcome}
)

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
