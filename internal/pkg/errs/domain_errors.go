package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Availability errors
	ErrInvalidSearch   = errors.New("invalid availability search")
	ErrBusyQueryFailed = errors.New("busy interval query failed")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
