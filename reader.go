package main

import (
	"fmt"
	"io"
	"strings"
)

// One read per connection; anything past this is never looked at.
const readBufferSize = 1024

// RequestReader performs a single bounded read of the connection and
// tokenizes the request line. Results are delivered on channels so the
// worker can select over them.
type RequestReader struct {
	r     io.Reader
	reqCh chan *Request
	errCh chan error
}

func NewRequestReader(r io.Reader) *RequestReader {
	return &RequestReader{
		r:     r,
		reqCh: make(chan *Request),
		errCh: make(chan error),
	}
}

func (r *RequestReader) Start() {
	go func() {
		buf := make([]byte, readBufferSize)
		n, err := r.r.Read(buf)
		if err != nil && err != io.EOF {
			r.errCh <- fmt.Errorf("failed to read request: %w", err)
			return
		}
		// A zero-byte read is still a request; it routes to the
		// default response instead of closing silently.
		r.reqCh <- parseRequest(buf[:n])
	}()
}

func (r *RequestReader) RequestReceived() <-chan *Request {
	return r.reqCh
}

func (r *RequestReader) ErrorOccurred() <-chan error {
	return r.errCh
}

// parseRequest tokenizes the request line into method, target and version.
// A raw buffer with no recognizable request line yields a Request with an
// empty target, which no route pattern matches.
func parseRequest(raw []byte) *Request {
	req := &Request{Raw: raw}
	line := string(raw)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return req
	}
	req.Method = fields[0]
	req.Target = fields[1]
	if len(fields) >= 3 {
		req.Version = fields[2]
	}
	return req
}
