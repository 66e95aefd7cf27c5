package web

// errors.go maps engine errors onto JSON error responses. The technical
// error is logged server-side with the request ID; the client receives a
// stable machine-readable code plus a human-readable message.

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sheetbind/sheetbind"
	"github.com/sheetbind/sheetbind/internal/logging"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// respondError logs err and writes the mapped JSON error response.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := mapError(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"code", code,
		"error", err.Error(),
	)

	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    code,
	})
}

// mapError classifies an engine error into an HTTP status, a stable code,
// and a user-facing message.
func mapError(err error) (status int, code, message string) {
	var serr *sheetbind.SchemaError
	var lerr *sheetbind.LimitError
	var cerr *sheetbind.ChoiceError

	switch {
	case errors.As(err, &serr):
		return http.StatusUnprocessableEntity, "SCHEMA001", serr.Error()
	case errors.As(err, &lerr):
		return http.StatusRequestEntityTooLarge, "LIMIT001", lerr.Error()
	case errors.As(err, &cerr):
		return http.StatusUnprocessableEntity, "CHOICE001", cerr.Error()
	default:
		return http.StatusBadRequest, "IMPORT001", "could not read the uploaded workbook; make sure it is a valid .xlsx file"
	}
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a simple error response for request-shape problems
// (missing parameters, bad form data).
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    "REQUEST001",
	})
}
