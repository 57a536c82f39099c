package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")
	ErrMissingToken  = fmt.Errorf("missing access token")

	// Store errors
	ErrNotFound  = fmt.Errorf("not found")
	ErrAuth      = fmt.Errorf("authentication failed")
	ErrTransient = fmt.Errorf("service unavailable")
	ErrConflict  = fmt.Errorf("remote revision changed")

	// Input validation errors
	ErrValidation      = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
