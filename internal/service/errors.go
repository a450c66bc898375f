package service

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrMealNotFound       = errors.New("meal not found")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidImage       = errors.New("image_base64 is not valid base64")
	ErrNoKeyAvailable     = errors.New("no LLM key available: provide api_key or enable simulate")
	ErrInvalidAPIKey      = errors.New("invalid API key")
	ErrEstimationFailed   = errors.New("AI Estimation failed")
	ErrDraftNotFound      = errors.New("estimate draft not found")
)
