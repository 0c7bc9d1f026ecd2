package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets "Content-Type: application/json". If marshaling fails nothing but
// a plain 500 is written and the marshal error is returned.
//
// Example usage:
//
//	utils.WriteJSON(w, todo, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the uniform {"kind", "message"} error body.
func WriteError(w http.ResponseWriter, kind, message string, statusCode int) (int, error) {
	return WriteJSON(w, models.ErrorResponse{Kind: kind, Message: message}, statusCode)
}
