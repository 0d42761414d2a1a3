// Package failure provides Error, a comparable domain failure made of a
// machine-readable code and a human message. It is the usual F of a
// rop.Result.
package failure

import "errors"

type Error struct {
	Code    string
	Message string
}

func New(code, message string) Error {
	return Error{Code: code, Message: message}
}

func (e Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// Is matches any failure.Error with the same Code.
func (e Error) Is(target error) bool {
	var other Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}
