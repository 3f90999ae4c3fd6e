package service

import "errors"

// Sentinel errors returned by the services. Handlers map them to HTTP
// statuses; callers wrap them with fmt.Errorf("%w: detail") when a specific
// message should reach the client.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrMisconfigured      = errors.New("security config invalid")
	ErrInvalidCredentials = errors.New("current password is not correct")
	ErrInvalidResetToken  = errors.New("password reset token is invalid")
	ErrResetTokenExpired  = errors.New("password reset token has expired")
	ErrTokenMalformed     = errors.New("token is malformed")
	ErrInvalidSignature   = errors.New("token signature is invalid")
)
