package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the JSON error envelope of the view API.
type ErrorBody struct {
	Error string `json:"error"`
	// Field names the offending input field for validation errors.
	Field string `json:"field,omitempty"`
}

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header.
//
// If marshaling fails it responds with 500 Internal Server Error and returns
// a wrapped error. The int result is the number of body bytes written.
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorBody]. An empty message falls back to the
// status text.
func WriteError(w http.ResponseWriter, statusCode int, message, field string) {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	_, _ = WriteJSON(w, ErrorBody{Error: message, Field: field}, statusCode)
}
