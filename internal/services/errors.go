package services

import "errors"

var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidOnboarding  = errors.New("invalid onboarding data")
	ErrEmptyMessage       = errors.New("message must not be empty")
	ErrUnknownAction      = errors.New("unknown action")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrActionNotFound     = errors.New("action not found")
	ErrUniversityNotFound = errors.New("university not found")
	ErrInvalidStage       = errors.New("invalid stage")
	ErrInvalidTask        = errors.New("invalid task")
	ErrTaskNotFound       = errors.New("task not found")
)
