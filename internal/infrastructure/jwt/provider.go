package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-notify-client/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the bearer token payload.
type Claims struct {
	UserID    string `json:"user_id"`
	Namespace string `json:"namespace,omitempty"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 bearer tokens.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	expiry := cfg.JWTExpiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Provider{secret: []byte(cfg.JWTSecret), expiry: expiry}, nil
}

func (p *Provider) Sign(userID, namespace string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Namespace: namespace,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
