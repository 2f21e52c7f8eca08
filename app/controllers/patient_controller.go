package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"clinic-api/app/apperr"
	"clinic-api/app/dto"
	"clinic-api/app/middleware"
	"clinic-api/app/services"
)

type PatientController struct {
	patients *services.PatientService
	log      zerolog.Logger
}

func NewPatientController(patients *services.PatientService, log zerolog.Logger) *PatientController {
	return &PatientController{patients: patients, log: log}
}

func (c *PatientController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.patients.List(middleware.GetClaims(r.Context()))
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (c *PatientController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	p, err := c.patients.Get(middleware.GetClaims(r.Context()), id)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *PatientController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	p, err := c.patients.Create(middleware.GetClaims(r.Context()), req.UserID, req.Phone)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *PatientController) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	var req dto.UpdatePatientRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	p, err := c.patients.Update(middleware.GetClaims(r.Context()), id, req.Phone)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	if err := c.patients.Delete(middleware.GetClaims(r.Context()), id); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Patient deleted"})
}
