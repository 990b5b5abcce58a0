package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrMissingAPIKey          = errors.New("generation API key is not configured")
	ErrGenerationFailed       = errors.New("generation failed")
	ErrMalformedOutput        = errors.New("malformed generation output")
	ErrInvalidShape           = errors.New("invalid itinerary shape")
	ErrPlanNotFound           = errors.New("plan not found")
	ErrAccountNotFound        = errors.New("account not found")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrDatabaseError          = errors.New("database error")
)
