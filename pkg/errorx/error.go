package errorx

import "fmt"

type Code uint64

type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// New creates an Error whose message is safe to show to the client. Internal
// causes must be logged at the call site, never embedded in the message.
func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
