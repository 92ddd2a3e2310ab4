package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
	ErrStatusBadGateway     = http.StatusBadGateway
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrValidation              = errors.New("Invalid request payload")
	ErrNotLoggedIn             = errors.New("Unauthorized access")
	ErrForbidden               = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrProductNotFound         = errors.New("Product not found")
	ErrAccountNotFound         = errors.New("Account not found")
	ErrInvalidCredentialsEmail = errors.New("Email or password is incorrect")
	ErrUpload                  = errors.New("Image upload failed")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrValidation:              ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrForbidden:               ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrProductNotFound:         ErrStatusNotFound,
	ErrAccountNotFound:         ErrStatusNotFound,
	ErrInvalidCredentialsEmail: ErrStatusNotLoggedIn,
	ErrUpload:                  ErrStatusBadGateway,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
