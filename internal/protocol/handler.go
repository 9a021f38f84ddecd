// Package protocol translates Lakeshore 336 command lines into device calls.
//
// Lines arrive without their CRLF terminator. Queries produce a single reply
// line; settings produce none. Lines that match no command, address a channel
// the instrument does not have, or arrive while the device is disconnected are
// dropped without a reply.
package protocol

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/lksh336/internal/device"
)

// Recorder observes handler outcomes. It is satisfied by monitor.Metrics.
type Recorder interface {
	CommandHandled(verb string)
	LineRejected()
	ReplySuppressed()
}

type Handler struct {
	log      *slog.Logger
	device   *device.Device
	recorder Recorder
	commands map[string]*command
}

// NewHandler builds the command table for dev. recorder may be nil.
func NewHandler(log *slog.Logger, dev *device.Device, recorder Recorder) *Handler {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	table := commandTable()
	commands := make(map[string]*command, len(table))
	for i := range table {
		commands[table[i].verb] = &table[i]
	}

	return &Handler{
		log:      log,
		device:   dev,
		recorder: recorder,
		commands: commands,
	}
}

// Handle processes one line and reports whether a reply must be sent.
func (h *Handler) Handle(ctx context.Context, line string) (string, bool) {
	cmd, args, err := h.match(line)
	if err != nil {
		h.recorder.LineRejected()
		h.log.ErrorContext(ctx, "unrecognized request",
			slog.String("line", line),
			slog.String("err", err.Error()),
		)
		return "", false
	}

	if !h.device.Connected() {
		h.recorder.ReplySuppressed()
		h.log.DebugContext(ctx, "device disconnected, request ignored", slog.String("verb", cmd.verb))
		return "", false
	}

	reply, err := cmd.run(h.device, args)
	if err != nil {
		h.recorder.LineRejected()
		h.log.ErrorContext(ctx, "request failed",
			slog.String("line", line),
			slog.String("err", err.Error()),
		)
		return "", false
	}

	h.recorder.CommandHandled(cmd.verb)
	h.log.DebugContext(ctx, "request handled", slog.String("verb", cmd.verb))

	return reply, cmd.query
}

func (h *Handler) match(line string) (*command, []arg, error) {
	verb, raw, hasArgs := strings.Cut(line, " ")

	cmd, ok := h.commands[verb]
	if !ok {
		return nil, nil, newUnknownCommandError(verb)
	}

	if len(cmd.args) == 0 {
		if hasArgs {
			return nil, nil, newArgumentCountError(verb, raw)
		}
		return cmd, nil, nil
	}

	if !hasArgs {
		return nil, nil, newArgumentCountError(verb, raw)
	}

	args, err := parseArgs(verb, raw, cmd.args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return cmd, args, nil
}

type nopRecorder struct{}

func (nopRecorder) CommandHandled(string) {}
func (nopRecorder) LineRejected()         {}
func (nopRecorder) ReplySuppressed()      {}
