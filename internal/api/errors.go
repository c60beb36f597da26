package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/nauticalab/uconfig/internal/document"
	"github.com/nauticalab/uconfig/pkg/uconfig"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// respondError sends an error response in JSON format
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
		Code:    code,
	})
}

// respondBadRequest sends a 400 Bad Request error
func respondBadRequest(w http.ResponseWriter, message string) {
	respondError(w, http.StatusBadRequest, message)
}

// respondNotFound sends a 404 Not Found error
func respondNotFound(w http.ResponseWriter, message string) {
	respondError(w, http.StatusNotFound, message)
}

// respondUnprocessable sends a 422 for documents that fail validation
func respondUnprocessable(w http.ResponseWriter, message string) {
	respondError(w, http.StatusUnprocessableEntity, message)
}

// respondInternalError sends a 500 Internal Server Error
func respondInternalError(w http.ResponseWriter, message string) {
	respondError(w, http.StatusInternalServerError, message)
}

// respondSuccess sends a 200 OK with payload
func respondSuccess(w http.ResponseWriter, payload interface{}) {
	respondJSON(w, http.StatusOK, payload)
}

// respondLoadError maps a document loading failure to a status code
func respondLoadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, document.ErrInvalidName):
		respondBadRequest(w, err.Error())
	case errors.Is(err, document.ErrNotFound):
		respondNotFound(w, err.Error())
	case errors.Is(err, uconfig.ErrValidation):
		respondUnprocessable(w, err.Error())
	default:
		log.Printf("Failed to load config: %v", err)
		respondInternalError(w, err.Error())
	}
}
