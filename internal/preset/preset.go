// Package preset applies TSV lists of backdoor calls to a device, once at
// startup and from files dropped into a watched directory.
//
//	method	args
//	set_id	test
//	set_output_setpoint	1,2.0
package preset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
)

const argSeparator = ","

type Caller interface {
	Call(name string, args []string) (any, error)
}

// Entry is one preset row.
type Entry struct {
	Method string `csv:"method"`
	Args   string `csv:"args"`
}

// Arguments splits Args on commas. An empty Args means no arguments.
func (e *Entry) Arguments() []string {
	if e.Args == "" {
		return nil
	}
	return strings.Split(e.Args, argSeparator)
}

type Loader struct {
	log    *slog.Logger
	caller Caller
}

func NewLoader(log *slog.Logger, caller Caller) *Loader {
	return &Loader{
		log:    log,
		caller: caller,
	}
}

func (l *Loader) LoadFile(ctx context.Context, filename string) (err error) {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open preset: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return l.Load(ctx, f)
}

// Load decodes every row first and applies them in order only if all rows decode.
func (l *Loader) Load(ctx context.Context, r io.Reader) error {
	entries, err := l.decode(r)
	if err != nil {
		return err
	}

	for i, entry := range entries {
		if _, err := l.caller.Call(entry.Method, entry.Arguments()); err != nil {
			return fmt.Errorf("preset row #%d (%s): %w", i+1, entry.Method, err)
		}

		l.log.DebugContext(ctx, "applied preset",
			slog.String("method", entry.Method),
			slog.String("args", entry.Args),
		)
	}

	l.log.InfoContext(ctx, "preset applied", slog.Int("entries", len(entries)))

	return nil
}

func (l *Loader) decode(r io.Reader) ([]*Entry, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.Comment = '#'
	reader.LazyQuotes = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	var entries []*Entry
	for {
		var entry Entry

		err := dec.Decode(&entry)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode preset row #%d: %w", len(entries)+1, err)
		}

		if entry.Method == "" {
			return nil, fmt.Errorf("invalid preset row #%d: method is required", len(entries)+1)
		}

		entries = append(entries, &entry)
	}

	return entries, nil
}
