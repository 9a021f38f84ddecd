package stream

import "bytes"

const (
	Terminator = "\r\n"

	// MaxLineLength bounds a request line, terminator excluded.
	MaxLineLength = 4096
)

var terminator = []byte(Terminator)

// lineSplitter frames CRLF terminated lines. Once a line grows past max bytes
// it is skipped up to its terminator and onDiscard is called once for it.
// A trailing fragment without terminator at EOF is dropped.
type lineSplitter struct {
	max        int
	discarding bool
	onDiscard  func()
}

func (s *lineSplitter) split(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if i := bytes.Index(data, terminator); i >= 0 {
		if s.discarding || i > s.max {
			if !s.discarding {
				s.onDiscard()
			}
			s.discarding = false
			return i + len(terminator), nil, nil
		}
		return i + len(terminator), data[:i], nil
	}

	if atEOF {
		return len(data), nil, nil
	}

	pending := len(data)
	if pending > 0 && data[pending-1] == '\r' {
		pending--
	}

	if pending > s.max {
		if !s.discarding {
			s.discarding = true
			s.onDiscard()
		}
		// keep the last byte, it may be the first half of the terminator
		return len(data) - 1, nil, nil
	}

	return 0, nil, nil
}
