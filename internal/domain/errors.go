package domain

// The error types below form the whole failure taxonomy the delivery layer
// maps to HTTP status codes. Anything else is treated as an internal error.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func NewAuthError(message string) error {
	return &AuthError{Message: message}
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(message string) error {
	return &ConflictError{Message: message}
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}
