package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// AccessTokenTTL is the lifetime of tokens issued on sign-in.
	AccessTokenTTL = 30 * time.Minute
	// ResetTokenTTL is the lifetime of password reset tokens.
	ResetTokenTTL = 15 * time.Minute
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrMissingSubject = errors.New("token has no subject")
)

// TokenService issues and verifies signed bearer tokens. Verification is
// stateless: validity is fully determined by the signature and expiry.
type TokenService struct {
	secretKey []byte
}

// NewTokenService creates a TokenService. An empty secret is refused so that
// a misconfigured process fails at startup rather than per-request.
func NewTokenService(secretKey string) (*TokenService, error) {
	if secretKey == "" {
		return nil, errors.New("token signing secret must not be empty")
	}
	return &TokenService{secretKey: []byte(secretKey)}, nil
}

// Issue produces a signed token for subject, expiring ttl from now.
func (ts *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(ts.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// IssueResetToken produces a short-lived token for the password reset flow.
// It uses the same signing scheme as access tokens, so a reset token is
// indistinguishable from an access token to the verifier.
func (ts *TokenService) IssueResetToken(identifier string) (string, error) {
	return ts.Issue(identifier, ResetTokenTTL)
}

// Verify checks the signature and expiry of tokenString and returns its
// subject. Failures are distinguishable: ErrExpiredToken when the expiry has
// passed, ErrMissingSubject when the payload lacks a subject, ErrInvalidToken
// for signature or structural problems.
func (ts *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrMissingSubject
	}
	return claims.Subject, nil
}
