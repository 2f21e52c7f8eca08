package controllers

import (
	"net/http"

	"github.com/rs/zerolog"

	"clinic-api/app/apperr"
	"clinic-api/app/dto"
	"clinic-api/app/middleware"
	"clinic-api/app/services"
)

type AppointmentController struct {
	appointments *services.AppointmentService
	log          zerolog.Logger
}

func NewAppointmentController(appointments *services.AppointmentService, log zerolog.Logger) *AppointmentController {
	return &AppointmentController{appointments: appointments, log: log}
}

func (c *AppointmentController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	a, err := c.appointments.Create(middleware.GetClaims(r.Context()), req.DoctorID, req.PatientID, req.Date)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (c *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.appointments.List(middleware.GetClaims(r.Context()))
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (c *AppointmentController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	a, err := c.appointments.Get(middleware.GetClaims(r.Context()), id)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (c *AppointmentController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	var req dto.UpdateAppointmentStatusRequest
	if err := decode(r, &req); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	a, err := c.appointments.UpdateStatus(middleware.GetClaims(r.Context()), id, req.Status)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (c *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	if err := c.appointments.Cancel(middleware.GetClaims(r.Context()), id); err != nil {
		apperr.Write(w, c.log, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Appointment cancelled"})
}
