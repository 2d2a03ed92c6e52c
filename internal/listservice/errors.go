package listservice

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
// Rule of thumb, all errors start with a small letter and end with no full stop.
const (
	ErrListDoesntExist    = Error("list doesn't exist")
	ErrEmptyList          = Error("list is empty")
	ErrPositionOutOfRange = Error("position is out of range")
	ErrInvalidValue       = Error("value is not valid json")
	ErrInvalidOptions     = Error("capacity and shards must be positive")
)

// KnownErrors lists every constant error of the service, so that
// transports can map error strings back onto them.
var KnownErrors = []Error{
	ErrListDoesntExist,
	ErrEmptyList,
	ErrPositionOutOfRange,
	ErrInvalidValue,
	ErrInvalidOptions,
}
