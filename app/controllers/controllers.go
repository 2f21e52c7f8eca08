package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clinic-api/app/apperr"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Validationf("invalid JSON body")
	}
	return nil
}

// pathID parses the {id} segment of the matched route.
func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperr.Validationf("invalid id")
	}
	return uint(id), nil
}
