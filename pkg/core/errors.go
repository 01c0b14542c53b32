package core

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument matches every ArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a caller-supplied value that failed a precondition check.
type ArgumentError struct {
	Op  string
	Arg Value
	Msg string
}

func InvalidArgument(op string, arg any, msg string, args ...any) *ArgumentError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &ArgumentError{Op: op, Arg: ValueOf(arg), Msg: msg}
}

func (e *ArgumentError) Error() string {
	return e.Msg
}

func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
