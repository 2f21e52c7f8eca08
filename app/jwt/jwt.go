package jwtutil

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"clinic-api/app/models"
)

var ErrBadToken = errors.New("invalid token")

type Claims struct {
	UserID uint        `json:"uid"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Signer issues and verifies both token kinds. Access and refresh tokens are
// signed with distinct secrets so a leaked access token can never be replayed
// against the refresh endpoint.
type Signer struct {
	AccessSecret  []byte
	RefreshSecret []byte
	Issuer        string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func (s *Signer) SignAccess(userID uint, role models.Role) (string, error) {
	return s.sign(userID, role, s.AccessSecret, s.AccessTTL, "")
}

// SignRefresh adds a uuid jti so two refresh tokens issued to the same user
// within one second still differ (the token column is unique).
func (s *Signer) SignRefresh(userID uint, role models.Role) (string, error) {
	return s.sign(userID, role, s.RefreshSecret, s.RefreshTTL, uuid.NewString())
}

func (s *Signer) sign(userID uint, role models.Role, secret []byte, ttl time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *Signer) ParseAccess(raw string) (*Claims, error) {
	return parse(raw, s.AccessSecret)
}

func (s *Signer) ParseRefresh(raw string) (*Claims, error) {
	return parse(raw, s.RefreshSecret)
}

func parse(raw string, secret []byte) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		// block alg confusion
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadToken
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, ErrBadToken
	}
	return claims, nil
}
