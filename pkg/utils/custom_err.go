package utils

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInvalidPage         = errors.New("invalid page parameter")
	ErrInvalidPageSize     = errors.New("invalid page size parameter")
	ErrDatabaseError       = errors.New("database error")
	ErrCityNotFound        = errors.New("city not found")
	ErrTripNotFound        = errors.New("trip not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrForbidden           = errors.New("forbidden")
	ErrScheduleIncomplete  = errors.New("generated schedule omits selected places")
	ErrUnexpectedAIOutput  = errors.New("unexpected output from generative service")
	ErrGenerativeDisabled  = errors.New("generative provider not configured")
	ErrNoJSONObjectInReply = errors.New("no JSON object found in reply")
)
