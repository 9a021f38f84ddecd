package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsQuery(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"*IDN?":        true,
		"SETP? 1":      true,
		`INNAME? "A"`:  true,
		"SETP 1,2.0":   false,
		"ALMRST":       false,
		`INNAME A,"?"`: false,
		"":             false,
	}

	for line, want := range tests {
		assert.Equal(t, want, isQuery(line), line)
	}
}

func TestValidateLevel(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "error", "INFO"} {
		assert.NoError(t, validateLevel(level), level)
	}
	assert.Error(t, validateLevel("loud"))
}
