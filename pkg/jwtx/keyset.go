package jwtx

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"encoding/json"

	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
)

// Key is one public key published by a user pool.
type Key struct {
	KeyID     string
	Algorithm string
	Use       string
	Public    crypto.PublicKey
}

// KeyType reports the JWK "kty" for the key.
func (k Key) KeyType() string {
	switch k.Public.(type) {
	case *rsa.PublicKey:
		return "RSA"
	case *ecdsa.PublicKey:
		return "EC"
	case ed25519.PublicKey:
		return "OKP"
	default:
		return ""
	}
}

// KeySet is an immutable snapshot of a pool's published keys. Once handed
// out it is never mutated, so it is safe to share between goroutines
// without locking. Replacing the keys for a pool means building a new set.
type KeySet struct {
	keys []Key
}

// NewKeySet copies keys into a new set.
func NewKeySet(keys ...Key) *KeySet {
	return &KeySet{keys: append([]Key(nil), keys...)}
}

// Keys returns a copy of the keys in publication order.
func (s *KeySet) Keys() []Key {
	if s == nil {
		return nil
	}
	return append([]Key(nil), s.keys...)
}

// Len returns the number of keys in the set.
func (s *KeySet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.keys)
}

// Lookup returns the key with the given kid.
func (s *KeySet) Lookup(kid string) (Key, bool) {
	if s == nil {
		return Key{}, false
	}
	for _, k := range s.keys {
		if k.KeyID == kid {
			return k, true
		}
	}
	return Key{}, false
}

// rsaKeys returns every RSA key in the set as a jwt verification set, so
// the parser tries each one in turn instead of selecting by kid.
func (s *KeySet) rsaKeys() jwt.VerificationKeySet {
	var vks jwt.VerificationKeySet
	if s == nil {
		return vks
	}
	for _, k := range s.keys {
		if pub, ok := k.Public.(*rsa.PublicKey); ok {
			vks.Keys = append(vks.Keys, pub)
		}
	}
	return vks
}

// MarshalJSON encodes the set as a JWKS document.
func (s *KeySet) MarshalJSON() ([]byte, error) {
	doc := jose.JSONWebKeySet{Keys: make([]jose.JSONWebKey, 0, s.Len())}
	for _, k := range s.Keys() {
		doc.Keys = append(doc.Keys, jose.JSONWebKey{
			Key:       k.Public,
			KeyID:     k.KeyID,
			Algorithm: k.Algorithm,
			Use:       k.Use,
		})
	}
	return json.Marshal(doc)
}
