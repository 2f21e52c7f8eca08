package policy

import "clinic-api/app/models"

// Action enumerates every role-gated operation in the API.
type Action int

const (
	ListUsers Action = iota
	ReadUser
	UpdateUser
	DeleteUser
	CreateAppointment
	ListAppointments
	ReadAppointment
	UpdateAppointmentStatus
	CancelAppointment
	ListDoctors
	ReadDoctor
	ManageDoctor
	ListPatients
	ReadPatient
	ManagePatient
	actionCount
)

// Decision is the outcome of the access table. AllowOwn grants access only
// when the requestor owns the target resource; ownership is always resolved
// server-side from the authenticated user id, never from request input.
type Decision int

const (
	Deny Decision = iota
	AllowOwn
	Allow
)

// Decide is the single authoritative access table. Controllers and services
// dispatch through it instead of branching on roles inline.
func Decide(role models.Role, a Action) Decision {
	switch role {
	case models.RoleAdmin:
		// admins may do everything, on any resource
		return Allow
	case models.RoleDoctor:
		switch a {
		case ReadUser, UpdateUser:
			return AllowOwn
		case ListAppointments, ReadAppointment, UpdateAppointmentStatus:
			return AllowOwn
		case ListDoctors, ReadDoctor:
			return Allow
		}
	case models.RolePatient:
		switch a {
		case ReadUser, UpdateUser:
			return AllowOwn
		case CreateAppointment:
			// always scoped to the patient's own record
			return Allow
		case ListAppointments, ReadAppointment, CancelAppointment:
			return AllowOwn
		case ListDoctors, ReadDoctor:
			return Allow
		case ReadPatient:
			return AllowOwn
		}
	}
	return Deny
}

// CanAccess reports whether role may perform a, given whether the requestor
// owns the target resource.
func CanAccess(role models.Role, a Action, owns bool) bool {
	switch Decide(role, a) {
	case Allow:
		return true
	case AllowOwn:
		return owns
	}
	return false
}
