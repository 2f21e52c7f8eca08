package apperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Kind classifies a failure into the taxonomy controllers map onto HTTP
// status codes. Anything that is not an *Error falls through to the
// catch-all in Write.
type Kind int

const (
	Validation Kind = iota // 400
	Authentication         // 401
	Authorization          // 403
	NotFound               // 404
	Conflict               // 409
	Unexpected             // 500
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error { return &Error{Kind: kind, Message: msg} }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Message: fmt.Sprintf(format, args...)}
}

func Unauthenticated(msg string) *Error { return &Error{Kind: Authentication, Message: msg} }

func Forbidden() *Error { return &Error{Kind: Authorization, Message: "Forbidden"} }

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error) *Error {
	return &Error{Kind: Unexpected, Message: "Internal server error", Err: err}
}

func (k Kind) status() int {
	switch k {
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusUnauthorized
	case Authorization:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// Write maps err onto an HTTP response. Store-layer constraint violations
// that escaped the services' explicit prechecks become 409/404; everything
// else unanticipated is logged and returned as a generic 500.
func Write(w http.ResponseWriter, log zerolog.Logger, err error) {
	var e *Error
	if !errors.As(err, &e) {
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			e = Conflictf("Duplicate entry")
		case errors.Is(err, gorm.ErrRecordNotFound):
			e = NotFoundf("Not found")
		default:
			e = Internal(err)
		}
	}
	if e.Kind == Unexpected {
		log.Error().Err(err).Msg("unexpected error")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Kind.status())
	_ = json.NewEncoder(w).Encode(map[string]string{"message": e.Message})
}
