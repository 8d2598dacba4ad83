package errs

import "errors"

// Domain-specific sentinel errors shared across usecase and handler layers
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSessionNotFound     = errors.New("no reservation for session")
	ErrInvalidIntent       = errors.New("invalid reservation intent")
	ErrInvalidStatus       = errors.New("invalid reservation status")

	// Collaborator errors
	ErrDirectoryLookupFailed = errors.New("directory lookup failed")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrCallInitiationFailed  = errors.New("call initiation failed")
)
