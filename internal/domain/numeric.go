package domain

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intPattern  = regexp.MustCompile(`^[+-]?\d+$`)
	realPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// Numeric is a value that keeps whether it was given as an integer or a real.
// The zero value is integer zero.
type Numeric struct {
	i    int64
	f    float64
	real bool
}

func Int(n int64) Numeric {
	return Numeric{i: n}
}

func Real(f float64) Numeric {
	return Numeric{f: f, real: true}
}

func (n Numeric) IsReal() bool {
	return n.real
}

func (n Numeric) Float64() float64 {
	if n.real {
		return n.f
	}
	return float64(n.i)
}

func (n Numeric) String() string {
	if n.real {
		return FormatFloat(n.f)
	}
	return strconv.FormatInt(n.i, 10)
}

func (n Numeric) MarshalJSON() ([]byte, error) {
	return []byte(n.String()), nil
}

// ParseInt accepts an optionally signed run of decimal digits.
func ParseInt(s string) (int, error) {
	if !intPattern.MatchString(s) {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidNumber, s, err)
	}
	return v, nil
}

// ParseFloat accepts decimal and exponent forms only; inf, nan and hex are rejected.
func ParseFloat(s string) (float64, error) {
	if !realPattern.MatchString(s) {
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidNumber, s, err)
	}
	return v, nil
}

func ParseNumeric(s string) (Numeric, error) {
	if intPattern.MatchString(s) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Numeric{}, fmt.Errorf("%w %q: %w", ErrInvalidNumber, s, err)
		}
		return Int(v), nil
	}
	f, err := ParseFloat(s)
	if err != nil {
		return Numeric{}, err
	}
	return Real(f), nil
}

// FormatFloat renders the shortest decimal that parses back to f. The result
// always carries a fractional part or an exponent, so 2 renders as "2.0".
// Exponent form is used below 1e-4 and from 1e16 upwards.
func FormatFloat(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
