package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"clinic-api/app/apperr"
	"clinic-api/app/dto"
	"clinic-api/app/middleware"
	"clinic-api/app/services"
)

type DoctorController struct {
	doctors *services.DoctorService
	log     zerolog.Logger
}

func NewDoctorController(doctors *services.DoctorService, log zerolog.Logger) *DoctorController {
	return &DoctorController{doctors: doctors, log: log}
}

func (c *DoctorController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.doctors.List(middleware.GetClaims(r.Context()))
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (c *DoctorController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	d, err := c.doctors.Get(middleware.GetClaims(r.Context()), id)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (c *DoctorController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	d, err := c.doctors.Create(middleware.GetClaims(r.Context()), req.UserID, req.Specialty)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}

func (c *DoctorController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	var req dto.UpdateDoctorRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	d, err := c.doctors.Update(middleware.GetClaims(r.Context()), id, req.Specialty)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (c *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	if err := c.doctors.Delete(middleware.GetClaims(r.Context()), id); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Doctor deleted"})
}
