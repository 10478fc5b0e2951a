package errs

import (
	"errors"
)

var (
	ErrClientRegistered = errors.New("client already exists")
	ErrClientNotFound   = errors.New("client does not exist")
	ErrInvalidDate      = errors.New("date cannot be in the past")
	ErrRoomNotAvailable = errors.New("room is not available")
	ErrInvalidBooking   = errors.New("invalid booking")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
