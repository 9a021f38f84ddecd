// Package backdoor exposes device getters and setters by name with string
// arguments, bypassing the wire protocol and the connectivity gate.
package backdoor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/kurochkinivan/lksh336/internal/device"
	"github.com/kurochkinivan/lksh336/internal/domain"
)

type kind int

const (
	kindInt kind = iota
	kindFloat
	kindNumeric
	kindString
	kindBool
)

type value struct {
	i int
	f float64
	n domain.Numeric
	s string
	b bool
}

type method struct {
	args []kind
	call func(d *device.Device, v []value) (any, error)
}

type Backdoor struct {
	device  *device.Device
	methods map[string]method
}

func New(dev *device.Device) *Backdoor {
	return &Backdoor{
		device:  dev,
		methods: methods(),
	}
}

// Methods returns the callable method names in lexical order.
func (b *Backdoor) Methods() []string {
	names := make([]string, 0, len(b.methods))
	for name := range b.methods {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Call invokes the named method. Getters return the stored value, setters return nil.
func (b *Backdoor) Call(name string, args []string) (any, error) {
	m, ok := b.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, name)
	}

	if len(args) != len(m.args) {
		return nil, &ArgumentError{
			Method: name,
			Index:  -1,
			Err:    fmt.Errorf("expected %d arguments, got %d", len(m.args), len(args)),
		}
	}

	values := make([]value, len(args))
	for i, k := range m.args {
		if err := values[i].parse(k, args[i]); err != nil {
			return nil, &ArgumentError{Method: name, Index: i, Value: args[i], Err: err}
		}
	}

	return m.call(b.device, values)
}

func (v *value) parse(k kind, s string) (err error) {
	switch k {
	case kindInt:
		v.i, err = domain.ParseInt(s)
	case kindFloat:
		v.f, err = domain.ParseFloat(s)
	case kindNumeric:
		v.n, err = domain.ParseNumeric(s)
	case kindString:
		// replies are CRLF framed, a stored CR or LF would split one reply in two
		if strings.ContainsFunc(s, unicode.IsControl) {
			return errControlCharacter
		}
		v.s = s
	case kindBool:
		v.b, err = strconv.ParseBool(s)
	}

	return err
}
