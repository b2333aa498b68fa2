package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired means the token verified but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other verification failure: bad signature,
	// malformed structure, missing or unparseable claims.
	ErrTokenInvalid = errors.New("token invalid")
)

// JWTManager mints and verifies stateless access tokens. The signing secret
// and algorithm are fixed at construction and never rotated at runtime.
// There is no revocation list: a token stays valid until natural expiry.
type JWTManager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewJWTManager builds a manager for the given HMAC algorithm (HS256, HS384
// or HS512). Anything outside the HMAC family is rejected up front.
func NewJWTManager(secret, algorithm string, ttl time.Duration) (*JWTManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &JWTManager{secret: []byte(secret), method: method, ttl: ttl}, nil
}

// TTL returns the configured access token lifetime.
func (m *JWTManager) TTL() time.Duration { return m.ttl }

// GenerateAccessToken signs a token whose claims are exactly the subject user
// id and an absolute expiry of now + TTL.
func (m *JWTManager) GenerateAccessToken(userID string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(m.ttl)
	claims := &jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(m.method, claims)
	s, err := t.SignedString(m.secret)
	return s, exp, err
}

// ParseAccessToken verifies signature and expiry and returns the subject user
// id. A token without an exp claim is invalid. Expired tokens surface as
// ErrTokenExpired, everything else as ErrTokenInvalid; callers that must not
// leak the distinction collapse both.
func (m *JWTManager) ParseAccessToken(tokenStr string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !tkn.Valid || claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}
