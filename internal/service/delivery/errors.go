package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackage        = errors.New("invalid package attributes")
	ErrInvalidCoordinate     = errors.New("invalid coordinate")
	ErrInvalidStatus         = errors.New("invalid delivery status")
	ErrInvalidRadius         = errors.New("invalid search radius")

	ErrForbidden          = errors.New("actor is not allowed to perform this operation")
	ErrDeliveryNotFound   = errors.New("delivery not found")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrCourierUnavailable = errors.New("courier is not available for delivery")
	ErrInvalidTransition  = errors.New("illegal delivery status transition")

	ErrTrackingCodeConflict  = errors.New("tracking code already exists")
	ErrTrackingCodeExhausted = errors.New("tracking code generation exhausted")
	ErrStorageConflict       = errors.New("concurrent storage conflict")
)
