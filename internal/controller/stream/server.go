// Package stream serves the instrument command protocol over TCP.
package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/kurochkinivan/lksh336/internal/config"
)

type LineHandler interface {
	Handle(ctx context.Context, line string) (string, bool)
}

// ConnObserver is notified about connection lifecycle. It is satisfied by
// monitor.Metrics.
type ConnObserver interface {
	ConnectionOpened()
	ConnectionClosed()
}

type Server struct {
	log      *slog.Logger
	cfg      config.Stream
	handler  LineHandler
	observer ConnObserver
	limiter  chan struct{}
	wg       sync.WaitGroup
}

// NewServer creates a stream server. observer may be nil. A non-positive
// MaxConnections means one connection at a time.
func NewServer(log *slog.Logger, cfg config.Stream, handler LineHandler, observer ConnObserver) *Server {
	if observer == nil {
		observer = nopObserver{}
	}

	limit := cfg.MaxConnections
	if limit < 1 {
		limit = 1
	}

	return &Server{
		log:      log,
		cfg:      cfg,
		handler:  handler,
		observer: observer,
		limiter:  make(chan struct{}, limit),
	}
}

func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, s.cfg.Port)
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig

	l, err := lc.Listen(ctx, "tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}
	defer l.Close()

	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done. It closes l and every
// live connection, waits for their handlers and returns ctx.Err(). Live
// connections are left to ctx when accepting fails for another reason.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		l.Close()
	})
	defer stop()

	s.log.InfoContext(ctx, "stream server listening",
		slog.String("addr", l.Addr().String()),
		slog.Int("max_connections", cap(s.limiter)),
	)

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.wg.Wait()
				return ctx.Err()
			}

			return fmt.Errorf("failed to accept connection: %w", err)
		}

		select {
		case s.limiter <- struct{}{}:
			s.wg.Add(1)
			go s.serveConn(ctx, conn)
		default:
			s.log.WarnContext(ctx, "connection limit reached, rejecting",
				slog.String("remote_addr", conn.RemoteAddr().String()),
			)
			conn.Close()
		}
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	log := s.log.With(slog.String("remote_addr", conn.RemoteAddr().String()))

	stop := context.AfterFunc(ctx, func() {
		conn.Close()
	})

	defer func() {
		stop()
		conn.Close()
		<-s.limiter
		s.observer.ConnectionClosed()
		s.wg.Done()
		log.DebugContext(ctx, "connection closed")
	}()

	s.observer.ConnectionOpened()
	log.DebugContext(ctx, "connection opened")

	splitter := &lineSplitter{
		max: MaxLineLength,
		onDiscard: func() {
			log.WarnContext(ctx, "line too long, discarded", slog.Int("max_length", MaxLineLength))
		},
	}

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 512), MaxLineLength+len(Terminator))
	scanner.Split(splitter.split)

	for {
		if s.cfg.ReadTimeout > 0 {
			conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout))
		}

		if !scanner.Scan() {
			break
		}

		reply, ok := s.handler.Handle(ctx, scanner.Text())
		if !ok {
			continue
		}

		if s.cfg.WriteTimeout > 0 {
			conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		}

		if _, err := io.WriteString(conn, reply+Terminator); err != nil {
			log.WarnContext(ctx, "failed to write reply", slog.String("err", err.Error()))
			return
		}
	}

	err := scanner.Err()
	if err == nil || ctx.Err() != nil {
		return
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		log.DebugContext(ctx, "read timeout")
		return
	}

	log.WarnContext(ctx, "failed to read request", slog.String("err", err.Error()))
}

type nopObserver struct{}

func (nopObserver) ConnectionOpened() {}
func (nopObserver) ConnectionClosed() {}
