package backdoor

import (
	"errors"
	"fmt"
)

var ErrUnknownMethod = errors.New("unknown method")

var errControlCharacter = errors.New("control characters are not allowed")

// ArgumentError reports a backdoor call whose arguments do not fit the method.
type ArgumentError struct {
	Method string
	Index  int // -1 when the argument count is wrong
	Value  string
	Err    error
}

func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Method, e.Err)
	}
	return fmt.Sprintf("%s: argument %d %q: %v", e.Method, e.Index, e.Value, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
