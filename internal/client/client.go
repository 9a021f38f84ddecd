// Package client talks to a Lakeshore 336 style line server.
package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

const terminator = "\r\n"

var (
	// ErrNoReply is returned by Query when no reply line arrives in time. The
	// instrument stays silent for settings, unknown lines and while disconnected.
	// The client closes itself on ErrNoReply since a late reply would answer the
	// next query.
	ErrNoReply = errors.New("no reply")

	ErrClosed = errors.New("client closed")
)

type Client struct {
	mu      sync.Mutex
	conn    net.Conn
	reader  *bufio.Reader
	timeout time.Duration
	closed  bool
}

// Dial connects to addr. A positive timeout bounds every write and every wait
// for a reply line.
func Dial(ctx context.Context, addr string, timeout time.Duration) (*Client, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	return &Client{
		conn:    conn,
		reader:  bufio.NewReader(conn),
		timeout: timeout,
	}, nil
}

// Send writes line with its terminator and does not wait for a reply.
func (c *Client) Send(ctx context.Context, line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.send(ctx, line)
}

// Query writes line and returns the reply without its terminator.
func (c *Client) Query(ctx context.Context, line string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.send(ctx, line); err != nil {
		return "", err
	}

	if err := c.conn.SetReadDeadline(c.deadline(ctx)); err != nil {
		return "", fmt.Errorf("failed to set read deadline: %w", err)
	}

	reply, err := c.reader.ReadString('\n')
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			c.close()
			return "", fmt.Errorf("%q: %w", line, ErrNoReply)
		}
		if errors.Is(err, io.EOF) {
			return "", fmt.Errorf("%q: connection closed: %w", line, err)
		}
		return "", fmt.Errorf("failed to read reply: %w", err)
	}

	return strings.TrimSuffix(reply, terminator), nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.close()
}

func (c *Client) close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	return c.conn.Close()
}

func (c *Client) send(ctx context.Context, line string) error {
	if c.closed {
		return ErrClosed
	}

	if err := c.conn.SetWriteDeadline(c.deadline(ctx)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if _, err := io.WriteString(c.conn, line+terminator); err != nil {
		return fmt.Errorf("failed to send %q: %w", line, err)
	}

	return nil
}

// deadline is the earlier of the client timeout and the ctx deadline. The
// zero time means no deadline.
func (c *Client) deadline(ctx context.Context) time.Time {
	var deadline time.Time
	if c.timeout > 0 {
		deadline = time.Now().Add(c.timeout)
	}

	if d, ok := ctx.Deadline(); ok && (deadline.IsZero() || d.Before(deadline)) {
		return d
	}
	return deadline
}
