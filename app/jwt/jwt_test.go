package jwtutil_test

import (
	"testing"
	"time"

	jwtutil "clinic-api/app/jwt"
	"clinic-api/app/models"
)

func newSigner() *jwtutil.Signer {
	return &jwtutil.Signer{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		Issuer:        "clinic-api",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    30 * 24 * time.Hour,
	}
}

func TestAccessRoundTrip(t *testing.T) {
	s := newSigner()
	tok, err := s.SignAccess(42, models.RoleDoctor)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	claims, err := s.ParseAccess(tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Role != models.RoleDoctor {
		t.Fatalf("claims = {%d %s}, want {42 DOCTOR}", claims.UserID, claims.Role)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	s := newSigner()
	tok, err := s.SignAccess(1, models.RolePatient)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	// flip one byte in the payload
	b := []byte(tok)
	mid := len(b) / 2
	if b[mid] == 'A' {
		b[mid] = 'B'
	} else {
		b[mid] = 'A'
	}
	if _, err := s.ParseAccess(string(b)); err == nil {
		t.Fatal("tampered token accepted")
	}
}

// An access token must never verify as a refresh token, and vice versa.
func TestKeyClassSeparation(t *testing.T) {
	s := newSigner()
	access, _ := s.SignAccess(1, models.RoleAdmin)
	refresh, _ := s.SignRefresh(1, models.RoleAdmin)

	if _, err := s.ParseRefresh(access); err == nil {
		t.Fatal("access token accepted by refresh verifier")
	}
	if _, err := s.ParseAccess(refresh); err == nil {
		t.Fatal("refresh token accepted by access verifier")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	s := newSigner()
	s.AccessTTL = -time.Minute
	tok, err := s.SignAccess(1, models.RolePatient)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := s.ParseAccess(tok); err == nil {
		t.Fatal("expired token accepted")
	}
}

// Refresh tokens carry a jti, so two issued in the same instant still differ.
func TestRefreshTokensUnique(t *testing.T) {
	s := newSigner()
	a, _ := s.SignRefresh(1, models.RolePatient)
	b, _ := s.SignRefresh(1, models.RolePatient)
	if a == b {
		t.Fatal("two refresh tokens are identical")
	}
}
