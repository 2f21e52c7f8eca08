package controllers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"clinic-api/app/apperr"
	"clinic-api/app/dto"
	"clinic-api/app/services"
)

const refreshCookie = "refreshToken"

type AuthController struct {
	auth   *services.AuthService
	secure bool // Secure cookie flag, on outside dev
	log    zerolog.Logger
}

func NewAuthController(auth *services.AuthService, secure bool, log zerolog.Logger) *AuthController {
	return &AuthController{auth: auth, secure: secure, log: log}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	u, err := c.auth.Register(req.Email, req.Password, req.Role, req.Name)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.RegisterResponse{ID: u.ID, Email: u.Email, Role: u.Role})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	access, refresh, err := c.auth.Login(req.Email, req.Password)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookie,
		Value:    refresh,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.auth.RefreshTTL() / time.Second),
	})
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: access})
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookie)
	if err != nil {
		apperr.Write(w, c.log, apperr.Unauthenticated("No refresh token"))
		return
	}
	access, err := c.auth.Refresh(cookie.Value)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.TokenResponse{AccessToken: access})
}

// Logout revokes the refresh token and clears the cookie. Without a cookie it
// is a no-op that still succeeds.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(refreshCookie); err == nil {
		if err := c.auth.Logout(cookie.Value); err != nil {
			apperr.Write(w, c.log, err)
			return
		}
		http.SetCookie(w, &http.Cookie{
			Name:     refreshCookie,
			Value:    "",
			Path:     "/",
			HttpOnly: true,
			Secure:   c.secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}
