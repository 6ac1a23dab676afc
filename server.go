package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

type DispatchMode string

const (
	DispatchSequential DispatchMode = "sequential"
	DispatchConcurrent DispatchMode = "concurrent"
)

// Server owns the accept loop and the dispatch strategy. The route table is
// read-only after construction, so workers share it without locking.
type Server struct {
	router *Router
	logger *zap.Logger
	mode   DispatchMode
	sem    chan struct{}
}

func NewServer(cfg *Config, router *Router, logger *zap.Logger) *Server {
	s := &Server{
		router: router,
		logger: logger,
		mode:   cfg.Mode,
	}
	if cfg.Mode == DispatchConcurrent {
		s.sem = make(chan struct{}, cfg.MaxWorkers)
	}
	return s
}

// listen binds with SO_REUSEADDR set before bind, so quick restarts don't
// trip over sockets lingering in TIME_WAIT.
func listen(port int) (net.Listener, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			if err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			}); err != nil {
				return err
			}
			return sockErr
		},
	}
	ln, err := lc.Listen(context.Background(), "tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind port %d: %w", port, err)
	}
	return ln, nil
}

// ListenAndServe binds the configured port and runs the accept loop until
// the listener is closed. A bind failure is fatal and returned to the
// caller; accept failures are not.
func (s *Server) ListenAndServe(port int) error {
	ln, err := listen(port)
	if err != nil {
		return err
	}
	defer ln.Close()

	s.logger.Info("listening",
		zap.Int("port", port),
		zap.String("mode", string(s.mode)))
	return s.Serve(ln)
}

// Serve accepts connections until ln is closed. Transient accept errors are
// logged and the loop continues; no accept failure terminates the process.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.logger.Error("accept error", zap.Error(err))
			continue
		}
		s.dispatch(conn)
	}
}

// dispatch hands the connection to a worker. Sequential mode blocks the
// accept loop for the lifetime of the connection. Concurrent mode is
// fire-and-forget, capped by the semaphore so load cannot spawn workers
// without bound; no handle to the worker is retained.
func (s *Server) dispatch(conn net.Conn) {
	w := NewWorker(s.router, s.logger)
	if s.mode == DispatchSequential {
		w.Start(conn)
		return
	}

	s.sem <- struct{}{}
	go func() {
		defer func() { <-s.sem }()
		w.Start(conn) // worker takes the ownership of |conn|
	}()
}
