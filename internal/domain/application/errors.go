package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")
)
