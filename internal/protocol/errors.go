package protocol

import "fmt"

// ParseErrorKind categorizes why a line did not match the command table.
type ParseErrorKind int

const (
	// ErrKindUnknownCommand indicates the verb is not in the command table.
	ErrKindUnknownCommand ParseErrorKind = iota
	// ErrKindArgumentCount indicates the verb matched with the wrong number of arguments.
	ErrKindArgumentCount
	// ErrKindInvalidArgument indicates an argument does not have the declared type.
	ErrKindInvalidArgument
)

// ParseError is returned for lines that do not match any registered command.
type ParseError struct {
	Kind  ParseErrorKind
	Verb  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ErrKindUnknownCommand:
		return fmt.Sprintf("unknown command %q", e.Verb)
	case ErrKindArgumentCount:
		return fmt.Sprintf("%s: wrong number of arguments in %q", e.Verb, e.Value)
	case ErrKindInvalidArgument:
		if e.Err != nil {
			return fmt.Sprintf("%s: invalid argument %q: %v", e.Verb, e.Value, e.Err)
		}
		return fmt.Sprintf("%s: invalid argument %q", e.Verb, e.Value)
	default:
		return fmt.Sprintf("parse error: %s", e.Value)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newUnknownCommandError(verb string) error {
	return &ParseError{Kind: ErrKindUnknownCommand, Verb: verb}
}

func newArgumentCountError(verb, args string) error {
	return &ParseError{Kind: ErrKindArgumentCount, Verb: verb, Value: args}
}

func newInvalidArgumentError(verb, value string, err error) error {
	return &ParseError{Kind: ErrKindInvalidArgument, Verb: verb, Value: value, Err: err}
}
