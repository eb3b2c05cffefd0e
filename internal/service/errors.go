package service

import "errors"

// Failure kinds surfaced by the services. Each maps to a distinct HTTP
// status at the transport layer so callers can branch on kind instead of
// message text.
var (
	// validation
	ErrRequiredFieldsMissing = errors.New("required fields are missing")
	ErrInvalidPhoneNumber    = errors.New("invalid phone number")

	// conflict
	ErrUserAlreadyExist = errors.New("user already exist")
	ErrPhoneNumberTaken = errors.New("phone number already verified by another user")

	// not found
	ErrUserNotFound = errors.New("user not found")

	// invalid credential
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOtp         = errors.New("invalid otp")

	// delivery
	ErrOtpDeliveryFailed = errors.New("otp delivery failed")
)
