package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every failed request returns. The error
// field repeats the HTTP status code so clients can branch without reading
// response headers.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes a standardized error response to the HTTP response writer
func RespondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondBadRequest writes a 400 response with a validation message
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound writes a 404 response with the canonical message
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound, "Not Found")
}

// RespondUnprocessable writes a 422 response for requests that are well
// formed but cannot be satisfied
func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, message)
}

// RespondInternalError writes a 500 response
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "Internal Server Error")
}
