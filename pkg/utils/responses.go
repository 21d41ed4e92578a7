package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

// WriteJSON writes an arbitrary payload with the given status code. Handlers
// use it for response bodies that don't fit the standard envelope (e.g. the
// "user" and "deletedUser" shapes of the account routes).
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// ------------- Error responses -------------

// returns 400 Bad Request with a single message
func ResponseBadRequest(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusBadRequest, Response{Success: false, Message: message})
}

// returns 400 Bad Request with an accumulated details list
func ResponseValidationFailed(w http.ResponseWriter, details []string) {
	WriteJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Validation failed", Details: details})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusUnauthorized, Response{Success: false, Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusNotFound, Response{Success: false, Message: message})
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusConflict, Response{Success: false, Message: message})
}

// returns 410 Gone
func ResponseGone(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusGone, Response{Success: false, Error: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusInternalServerError, Response{Success: false, Message: message})
}
