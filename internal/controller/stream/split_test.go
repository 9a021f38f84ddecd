package stream

import (
	"bufio"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, r io.Reader) (lines []string, discarded int) {
	t.Helper()

	splitter := &lineSplitter{
		max:       MaxLineLength,
		onDiscard: func() { discarded++ },
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 512), MaxLineLength+len(Terminator))
	scanner.Split(splitter.split)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())

	return lines, discarded
}

func TestLineSplitter(t *testing.T) {
	t.Parallel()

	maxLine := strings.Repeat("A", MaxLineLength)
	longLine := strings.Repeat("B", MaxLineLength+1)
	hugeLine := strings.Repeat("C", 3*MaxLineLength)

	tests := []struct {
		name      string
		input     string
		want      []string
		discarded int
	}{
		{
			name:  "single line",
			input: "*IDN?\r\n",
			want:  []string{"*IDN?"},
		},
		{
			name:  "several lines",
			input: "SETP 1,2.0\r\nSETP? 1\r\nKRDG? A\r\n",
			want:  []string{"SETP 1,2.0", "SETP? 1", "KRDG? A"},
		},
		{
			name:  "bare LF is not a terminator",
			input: "SETP? 1\nSETP? 2\r\n",
			want:  []string{"SETP? 1\nSETP? 2"},
		},
		{
			name:  "empty line",
			input: "\r\n*IDN?\r\n",
			want:  []string{"", "*IDN?"},
		},
		{
			name:  "unterminated tail dropped",
			input: "*IDN?\r\nSETP? 1",
			want:  []string{"*IDN?"},
		},
		{
			name:  "line at limit kept",
			input: maxLine + "\r\n*IDN?\r\n",
			want:  []string{maxLine, "*IDN?"},
		},
		{
			name:      "line over limit discarded",
			input:     longLine + "\r\n*IDN?\r\n",
			want:      []string{"*IDN?"},
			discarded: 1,
		},
		{
			name:      "very long line discarded once",
			input:     "SETP? 1\r\n" + hugeLine + "\r\nSETP? 2\r\n",
			want:      []string{"SETP? 1", "SETP? 2"},
			discarded: 1,
		},
		{
			name:      "two long lines",
			input:     longLine + "\r\n" + hugeLine + "\r\n",
			discarded: 2,
		},
		{
			name:      "unterminated long tail",
			input:     "*IDN?\r\n" + hugeLine,
			want:      []string{"*IDN?"},
			discarded: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			lines, discarded := scanAll(t, strings.NewReader(tt.input))
			assert.Equal(t, tt.want, lines)
			assert.Equal(t, tt.discarded, discarded)

			lines, discarded = scanAll(t, iotest.OneByteReader(strings.NewReader(tt.input)))
			assert.Equal(t, tt.want, lines, "one byte reads")
			assert.Equal(t, tt.discarded, discarded, "one byte reads")
		})
	}
}
