package jwtauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/riskibarqy/tournament-ops/internal/domain/user"
	"github.com/riskibarqy/tournament-ops/internal/usecase"
)

// Claims is the access token payload. The subject carries the user id.
type Claims struct {
	Email string   `json:"email,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// Verifier checks HS256 bearer tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

func NewVerifier(secret, issuer string) (*Verifier, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	return &Verifier{
		secret: []byte(secret),
		issuer: strings.TrimSpace(issuer),
		leeway: 30 * time.Second,
		now:    time.Now,
	}, nil
}

func (v *Verifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid token", usecase.ErrUnauthorized)
	}

	if err := v.validateClaims(claims); err != nil {
		return user.Principal{}, fmt.Errorf("%w: %s", usecase.ErrUnauthorized, err.Error())
	}

	return user.Principal{
		UserID: claims.Subject,
		Email:  claims.Email,
		Roles:  append([]string(nil), claims.Roles...),
	}, nil
}

func (v *Verifier) validateClaims(claims *Claims) error {
	now := v.now()
	if claims.ExpiresAt == nil {
		return fmt.Errorf("token has no expiry")
	}
	if now.After(claims.ExpiresAt.Add(v.leeway)) {
		return fmt.Errorf("token expired")
	}
	if claims.NotBefore != nil && now.Add(v.leeway).Before(claims.NotBefore.Time) {
		return fmt.Errorf("token not valid yet")
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return fmt.Errorf("unexpected token issuer")
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return fmt.Errorf("token subject is required")
	}
	return nil
}
