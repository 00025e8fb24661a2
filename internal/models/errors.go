package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrProductNameNotUnique should never surface to users since products
	// are only created while holding the write transaction of a purchase.
	ErrProductNameNotUnique = errors.New("the product name must be unique")

	ErrInsufficientFunds   = errors.New("you do not have enough balance to make the purchase")
	ErrInsufficientStock   = errors.New("there is not enough stock to make the sale")
	ErrInsufficientBalance = errors.New("insufficient balance to carry out this operation")
)
