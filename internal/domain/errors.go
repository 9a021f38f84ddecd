package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChannel is wrapped by every channel addressing failure.
	ErrInvalidChannel = errors.New("invalid channel")

	ErrInvalidOutput = fmt.Errorf("%w: output", ErrInvalidChannel)
	ErrInvalidInput  = fmt.Errorf("%w: input", ErrInvalidChannel)

	ErrInvalidNumber = errors.New("invalid number")
)

// InputIndex maps an input key to its storage index.
func InputIndex(key string) (int, error) {
	for i, k := range InputKeys {
		if k == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w %q", ErrInvalidInput, key)
}

// OutputIndex maps a 1-based output number to its storage index.
func OutputIndex(output int) (int, error) {
	if output < 1 || output > NumOutputs {
		return -1, fmt.Errorf("%w %d", ErrInvalidOutput, output)
	}
	return output - 1, nil
}
