package preset_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kurochkinivan/lksh336/internal/backdoor"
	"github.com/kurochkinivan/lksh336/internal/device"
	"github.com/kurochkinivan/lksh336/internal/preset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePreset(t *testing.T, dir, name, rows string) string {
	t.Helper()

	filename := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(filename, []byte("method\targs\n"+rows), 0o600))

	return filename
}

func TestWatcher_Run(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	dir := t.TempDir()
	dev := device.New()

	writePreset(t, dir, "bad.tsv", "set_output_setpoint\t9,1.0\n")
	writePreset(t, dir, "notes.txt", "set_connected\tfalse\n")
	first := writePreset(t, dir, "first.tsv", "set_id\tone\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.tsv"), 0o700))

	w := preset.NewWatcher(log, dir, 10*time.Millisecond, preset.NewLoader(log, backdoor.New(dev)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool { return dev.ID() == "one" }, 2*time.Second, 10*time.Millisecond)

	writePreset(t, dir, "second.tsv", "set_output_range\t2,3\n")
	require.Eventually(t, func() bool {
		r, err := dev.Range(2)
		return err == nil && r == 3
	}, 2*time.Second, 10*time.Millisecond)

	writePreset(t, dir, "first.tsv", "set_id\ttwo\n")
	require.NoError(t, os.Chtimes(first, time.Now(), time.Now().Add(time.Hour)))
	require.Eventually(t, func() bool { return dev.ID() == "two" }, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	assert.True(t, dev.Connected())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.DiscardHandler)
	w := preset.NewWatcher(log, filepath.Join(t.TempDir(), "absent"), 10*time.Millisecond, preset.NewLoader(log, &mockCaller{}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, w.Run(ctx), context.DeadlineExceeded)
}
