// Package jwtxtest signs user pool style access tokens and serves key sets
// for tests of code built on jwtx.
package jwtxtest

import (
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/cognitoauth/pkg/jwtx"
)

// Region and UserPoolID name the pool tokens are minted for by default.
const (
	Region     = "ap-southeast-2"
	UserPoolID = "ap-southeast-2_TestPool1"
)

// Signer holds an RSA key pair and signs RS256 tokens with it.
type Signer struct {
	KID string
	key *rsa.PrivateKey
}

// NewSigner generates a fresh 2048-bit key under kid.
func NewSigner(t testing.TB, kid string) *Signer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return &Signer{KID: kid, key: key}
}

// Sign returns claims as a signed compact token with the kid header set.
func (s *Signer) Sign(t testing.TB, claims jwt.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tok.Header["kid"] = s.KID
	signed, err := tok.SignedString(s.key)
	require.NoError(t, err)
	return signed
}

// Key is the public half, as a pool would publish it.
func (s *Signer) Key() jwtx.Key {
	return jwtx.Key{
		KeyID:     s.KID,
		Algorithm: jwt.SigningMethodRS256.Alg(),
		Use:       "sig",
		Public:    &s.key.PublicKey,
	}
}

// KeySet publishes the public keys of signers.
func KeySet(signers ...*Signer) *jwtx.KeySet {
	keys := make([]jwtx.Key, 0, len(signers))
	for _, s := range signers {
		keys = append(keys, s.Key())
	}
	return jwtx.NewKeySet(keys...)
}

// AccessClaims returns claims that pass verification for the default pool
// until exp.
func AccessClaims(username string, exp time.Time) *jwtx.AccessClaims {
	return &jwtx.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtx.IssuerURL(Region, UserPoolID),
			Subject:   "sub-" + username,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(exp.Add(-time.Hour)),
			ID:        "jti-" + username,
		},
		TokenUse: jwtx.AccessTokenUse,
		Username: username,
		ClientID: "test-client",
		Scope:    "aws.cognito.signin.user.admin",
	}
}

// JWKSServer serves a key set the way the public key endpoint does and
// counts the requests it receives.
type JWKSServer struct {
	*httptest.Server

	hits atomic.Int64

	mu     sync.Mutex
	status int
	body   []byte
	gate   chan struct{}
	paths  []string
}

// NewJWKSServer serves ks on every path. The server is closed when the test
// ends.
func NewJWKSServer(t testing.TB, ks *jwtx.KeySet) *JWKSServer {
	t.Helper()
	body, err := ks.MarshalJSON()
	require.NoError(t, err)

	s := &JWKSServer{status: http.StatusOK, body: body}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Hits returns how many requests have been served.
func (s *JWKSServer) Hits() int64 { return s.hits.Load() }

// Paths returns the request paths seen so far.
func (s *JWKSServer) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

// Respond replaces the status and body returned from now on.
func (s *JWKSServer) Respond(status int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.body = status, body
}

// Hold makes requests block until the returned release func is called.
func (s *JWKSServer) Hold() (release func()) {
	gate := make(chan struct{})
	s.mu.Lock()
	s.gate = gate
	s.mu.Unlock()

	var once sync.Once
	return func() { once.Do(func() { close(gate) }) }
}

func (s *JWKSServer) serve(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)

	s.mu.Lock()
	s.paths = append(s.paths, r.URL.Path)
	status, body, gate := s.status, s.body, s.gate
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
