package main

import (
	"bytes"
	"fmt"
	"io"
)

// WriteResponse serializes the status line, the two fixed headers, a blank
// line and the body, then issues one blocking write. Partial writes are not
// retried; bodies are short enough that a short write means a dead peer.
func WriteResponse(w io.Writer, res *Response) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "HTTP/1.1 %d %s\r\n", res.Status, StatusPhrase(res.Status))
	fmt.Fprintf(&b, "Content-Type: %s\r\n", res.ContentType)
	fmt.Fprintf(&b, "Content-Length: %d\r\n", len(res.Body))
	b.WriteString("\r\n")
	b.WriteString(res.Body)

	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
