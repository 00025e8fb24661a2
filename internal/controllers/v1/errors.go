package v1

import (
	"errors"
	"net/http"

	"github.com/stockledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no product matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Form validation errors
var (
	errMissingFields    = errors.New("please complete all fields")
	errInvalidNumber    = errors.New("please enter correct values for price and quantity")
	errNotPositive      = errors.New("the unit price and quantity must be greater than zero")
	errInvalidValue     = errors.New("please enter a valid numerical value for the change")
	errInvalidOperation = errors.New("the operation must be one of: add, subtract")
	errInvalidDate      = errors.New("please enter valid date values (dd-mm-yyyy)")
)
