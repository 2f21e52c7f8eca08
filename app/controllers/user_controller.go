package controllers

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"clinic-api/app/apperr"
	"clinic-api/app/dto"
	"clinic-api/app/middleware"
	"clinic-api/app/services"
)

type UserController struct {
	users *services.UserService
	log   zerolog.Logger
}

func NewUserController(users *services.UserService, log zerolog.Logger) *UserController {
	return &UserController{users: users, log: log}
}

func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	users, err := c.users.List(claims, page, limit)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.UserListResponse{Data: users})
}

func (c *UserController) Me(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	u, err := c.users.Get(claims, claims.UserID)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	u, err := c.users.Get(middleware.GetClaims(r.Context()), id)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	var req dto.UpdateUserRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	u, err := c.users.Update(middleware.GetClaims(r.Context()), id, req.Name, req.Email, req.Password)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	if err := c.users.Delete(middleware.GetClaims(r.Context()), id); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}
