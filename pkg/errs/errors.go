package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer           = errors.New("Internal server error")
	ErrClient                   = errors.New("Bad request")
	ErrNotLoggedIn              = errors.New("Unauthorized access")
	ErrUnauthorized             = errors.New("Forbidden access")
	ErrNotFound                 = errors.New("Resource not found")
	ErrAccountNotFound          = errors.New("Account not found")
	ErrInvalidCredentialsEmail  = errors.New("Email or password is incorrect")
	ErrEmailAlreadyUsed         = errors.New("Email has already been used")
	ErrConflict                 = errors.New("Conflicting record found")
	ErrInsufficientStock        = errors.New("Not enough stock for the requested quantity")
	ErrInvalidOrderStatus       = errors.New("Unknown order status")
	ErrInvalidStatusTransition  = errors.New("Order status transition is not allowed")
	ErrReviewRequiresPurchase   = errors.New("Only delivered purchases can be reviewed")
	ErrEmptyCart                = errors.New("The cart is empty")
	ErrNotAnImage               = errors.New("Uploaded file is not an image")
	ErrBadGateway               = errors.New("Upstream service failure")
	ErrDuplicateOrder           = errors.New("Order has already been placed")
)

var errorMap = map[error]int{
	ErrInternalServer:          http.StatusInternalServerError,
	ErrClient:                  http.StatusBadRequest,
	ErrNotLoggedIn:             http.StatusUnauthorized,
	ErrUnauthorized:            http.StatusForbidden,
	ErrNotFound:                http.StatusNotFound,
	ErrAccountNotFound:         http.StatusNotFound,
	ErrInvalidCredentialsEmail: http.StatusUnauthorized,
	ErrEmailAlreadyUsed:        http.StatusBadRequest,
	ErrConflict:                http.StatusConflict,
	ErrInsufficientStock:       http.StatusConflict,
	ErrInvalidOrderStatus:      http.StatusBadRequest,
	ErrInvalidStatusTransition: http.StatusConflict,
	ErrReviewRequiresPurchase:  http.StatusForbidden,
	ErrEmptyCart:               http.StatusBadRequest,
	ErrNotAnImage:              http.StatusBadRequest,
	ErrBadGateway:              http.StatusBadGateway,
	ErrDuplicateOrder:          http.StatusConflict,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
