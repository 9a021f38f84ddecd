package protocol

import (
	"errors"
	"strings"

	"github.com/kurochkinivan/lksh336/internal/domain"
)

const (
	argSeparator = ","
	quote        = `"`
)

type argKind int

const (
	argInt argKind = iota
	argFloat
	argNumeric
	// argKey is an input letter, optionally quoted. Membership is checked by the device.
	argKey
	// argString runs up to the next separator and is kept verbatim.
	argString
	// argQuoted must be the last argument; it takes the rest of the line between quotes.
	argQuoted
)

var errEmptyArgument = errors.New("empty argument")

type arg struct {
	i int
	f float64
	n domain.Numeric
	s string
}

// parseArgs splits raw according to kinds and converts every token.
func parseArgs(verb, raw string, kinds []argKind) ([]arg, error) {
	tokens, err := splitArgs(verb, raw, kinds)
	if err != nil {
		return nil, err
	}

	args := make([]arg, len(kinds))
	for i, kind := range kinds {
		if err := args[i].parse(kind, tokens[i]); err != nil {
			return nil, newInvalidArgumentError(verb, tokens[i], err)
		}
	}

	return args, nil
}

func splitArgs(verb, raw string, kinds []argKind) ([]string, error) {
	tokens := make([]string, 0, len(kinds))
	rest := raw

	for i, kind := range kinds {
		last := i == len(kinds)-1

		if kind == argQuoted {
			if !last || len(rest) < 2*len(quote) || !strings.HasPrefix(rest, quote) || !strings.HasSuffix(rest, quote) {
				return nil, newInvalidArgumentError(verb, rest, nil)
			}
			tokens = append(tokens, rest[len(quote):len(rest)-len(quote)])
			return tokens, nil
		}

		if last {
			if strings.Contains(rest, argSeparator) {
				return nil, newArgumentCountError(verb, raw)
			}
			tokens = append(tokens, rest)
			return tokens, nil
		}

		token, tail, found := strings.Cut(rest, argSeparator)
		if !found {
			return nil, newArgumentCountError(verb, raw)
		}
		tokens = append(tokens, token)
		rest = tail
	}

	return tokens, nil
}

func (a *arg) parse(kind argKind, token string) (err error) {
	switch kind {
	case argInt:
		a.i, err = domain.ParseInt(token)
	case argFloat:
		a.f, err = domain.ParseFloat(token)
	case argNumeric:
		a.n, err = domain.ParseNumeric(token)
	case argKey:
		token = unquote(token)
		if token == "" {
			return errEmptyArgument
		}
		a.s = token
	case argString:
		if token == "" {
			return errEmptyArgument
		}
		a.s = token
	case argQuoted:
		a.s = token
	}

	return err
}

func unquote(s string) string {
	if len(s) >= 2*len(quote) && strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) {
		return s[len(quote) : len(s)-len(quote)]
	}
	return s
}
