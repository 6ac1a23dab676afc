package main

import (
	"net"

	"go.uber.org/zap"
)

// Worker handles exactly one request/response cycle on one connection.
// It owns the connection from Start until finishWorker closes it.
type Worker struct {
	conn   net.Conn
	router *Router
	logger *zap.Logger
	req    *Request
	res    *Response
}

type stateFunc func(*Worker) stateFunc

func NewWorker(router *Router, logger *zap.Logger) *Worker {
	return &Worker{
		router: router,
		logger: logger,
	}
}

// Start runs the worker to completion. The connection is closed on every
// exit path, including read and write failures.
func (w *Worker) Start(conn net.Conn) {
	w.conn = conn

	for state := waitForRequest; state != nil; {
		state = state(w)
	}
}

// state funcs

func waitForRequest(w *Worker) stateFunc {
	r := NewRequestReader(w.conn)
	r.Start()
	select {
	case req := <-r.RequestReceived():
		w.req = req
		return routeRequest
	case err := <-r.ErrorOccurred():
		w.logger.Warn("read failed, closing connection", zap.Error(err))
		return finishWorker
	}
}

func routeRequest(w *Worker) stateFunc {
	rt := w.router.Route(w.req.Target)
	w.logger.Debug("routed request",
		zap.String("method", w.req.Method),
		zap.String("target", w.req.Target),
		zap.Int("status", rt.Status))
	w.res = rt.Response()
	return sendResponse
}

func sendResponse(w *Worker) stateFunc {
	if err := WriteResponse(w.conn, w.res); err != nil {
		w.logger.Warn("write failed, closing connection", zap.Error(err))
	}
	return finishWorker
}

func finishWorker(w *Worker) stateFunc {
	if w.conn != nil {
		w.conn.Close()
	}
	return nil
}
