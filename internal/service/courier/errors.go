package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid courier status")
	ErrInvalidRating         = errors.New("invalid rating")
	ErrInvalidVehicle        = errors.New("invalid vehicle")
	ErrInvalidCoordinate     = errors.New("invalid coordinate")

	ErrForbidden       = errors.New("actor is not allowed to perform this operation")
	ErrCourierNotFound = errors.New("courier not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrAlreadyCourier  = errors.New("user is already a courier")
	ErrPlateConflict   = errors.New("license plate already registered")
)
