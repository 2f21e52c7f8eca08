package services_test

import (
	"testing"

	"clinic-api/app/apperr"
	"clinic-api/app/models"
)

func TestRegisterDefaultsToPatientAndCreatesProfile(t *testing.T) {
	e := setup(t)

	u, err := e.auth.Register("pat@test", "password123", "", "Pat")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != models.RolePatient {
		t.Fatalf("role = %s, want PATIENT", u.Role)
	}
	p, err := e.patients.FindByUserID(u.ID)
	if err != nil {
		t.Fatalf("patient profile not created: %v", err)
	}
	if p.UserID != u.ID {
		t.Fatalf("patient.UserID = %d, want %d", p.UserID, u.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	e := setup(t)

	tests := []struct {
		name                        string
		email, password, role, user string
	}{
		{"empty email", "", "password123", "", "X"},
		{"empty password", "a@b.com", "", "", "X"},
		{"empty name", "a@b.com", "password123", "", ""},
		{"bad role", "a@b.com", "password123", "NURSE", "X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.auth.Register(tt.email, tt.password, models.Role(tt.role), tt.user)
			wantKind(t, err, apperr.Validation)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := setup(t)

	if _, err := e.auth.Register("dup@test", "password123", "", "First"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := e.auth.Register("dup@test", "password123", "", "Second")
	wantKind(t, err, apperr.Conflict)
}

func TestLoginBadCredentials(t *testing.T) {
	e := setup(t)
	if _, err := e.auth.Register("u@test", "password123", "", "U"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := e.auth.Login("u@test", "wrongpass"); err == nil {
		t.Fatal("wrong password accepted")
	} else {
		wantKind(t, err, apperr.Authentication)
	}
	if _, _, err := e.auth.Login("nobody@test", "password123"); err == nil {
		t.Fatal("unknown user accepted")
	} else {
		wantKind(t, err, apperr.Authentication)
	}
}

func TestLoginIssuesBothTokens(t *testing.T) {
	e := setup(t)
	if _, err := e.auth.Register("u@test", "password123", "", "U"); err != nil {
		t.Fatalf("register: %v", err)
	}

	access, refresh, err := e.auth.Login("u@test", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := e.signer.ParseAccess(access); err != nil {
		t.Fatalf("access token invalid: %v", err)
	}
	if _, err := e.signer.ParseRefresh(refresh); err != nil {
		t.Fatalf("refresh token invalid: %v", err)
	}
	// refresh token must be persisted for later revocation
	if _, err := e.tokens.FindByToken(refresh); err != nil {
		t.Fatalf("refresh token not stored: %v", err)
	}
}

func TestRefreshFlow(t *testing.T) {
	e := setup(t)
	if _, err := e.auth.Register("u@test", "password123", "", "U"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, refresh, err := e.auth.Login("u@test", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, err := e.auth.Refresh(refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	claims, err := e.signer.ParseAccess(access)
	if err != nil {
		t.Fatalf("new access token invalid: %v", err)
	}
	if claims.Role != models.RolePatient {
		t.Fatalf("role = %s, want PATIENT", claims.Role)
	}
}

func TestRefreshUnknownToken(t *testing.T) {
	e := setup(t)
	// cryptographically valid but never persisted
	tok, _ := e.signer.SignRefresh(99, models.RolePatient)
	_, err := e.auth.Refresh(tok)
	wantKind(t, err, apperr.Authentication)
}

// Revocation is irreversible: after logout the token must never refresh
// again, even though its cryptographic expiry is decades away.
func TestLogoutRevokesRefreshToken(t *testing.T) {
	e := setup(t)
	if _, err := e.auth.Register("u@test", "password123", "", "U"); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, refresh, err := e.auth.Login("u@test", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := e.auth.Logout(refresh); err != nil {
		t.Fatalf("logout: %v", err)
	}
	_, err = e.auth.Refresh(refresh)
	wantKind(t, err, apperr.Authentication)

	// idempotent
	if err := e.auth.Logout(refresh); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}
