package handlers

import (
	"errors"
	"net/http"

	"hotel-forecast/models"
)

// Error codes of JSON error bodies.
const (
	ERR_DATA_UNAVAILABLE = "data_unavailable"
	ERR_DATA_MALFORMED   = "data_malformed"
	ERR_EMPTY_INPUT      = "empty_input"
	ERR_INTERNAL         = "internal"
	ERR_BAD_REQUEST      = "bad_request"
)

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// classify maps an error to its API code and HTTP status.
func classify(err error) (string, int) {
	switch {
	case errors.Is(err, models.ErrDataUnavailable):
		return ERR_DATA_UNAVAILABLE, http.StatusServiceUnavailable
	case errors.Is(err, models.ErrDataMalformed):
		return ERR_DATA_MALFORMED, http.StatusInternalServerError
	case errors.Is(err, models.ErrEmptyInput):
		return ERR_EMPTY_INPUT, http.StatusInternalServerError
	default:
		return ERR_INTERNAL, http.StatusInternalServerError
	}
}
