package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("broken pipe")
}

func TestWriteResponse(t *testing.T) {
	res := &Response{Status: 200, ContentType: "text/plain", Body: "OK"}

	w := new(bytes.Buffer)
	require.NoError(t, WriteResponse(w, res))

	ss := []string{
		"HTTP/1.1 200 OK\r\n",
		"Content-Type: text/plain\r\n",
		"Content-Length: 2\r\n",
		"\r\n",
		"OK",
	}
	assert.Equal(t, strings.Join(ss, ""), w.String())
}

func TestWriteResponseNotFound(t *testing.T) {
	res := &Response{Status: 404, ContentType: "text/plain", Body: "Not Found"}

	w := new(bytes.Buffer)
	require.NoError(t, WriteResponse(w, res))

	out := w.String()
	assert.True(t, strings.HasPrefix(out, "HTTP/1.1 404 Not Found\r\n"))
	assert.Contains(t, out, "Content-Length: 9\r\n")
	assert.True(t, strings.HasSuffix(out, "\r\n\r\nNot Found"))
}

func TestWriteResponseContentLengthIsByteCount(t *testing.T) {
	body := `{"status":"healthy"}`
	res := &Response{Status: 200, ContentType: "application/json", Body: body}

	w := new(bytes.Buffer)
	require.NoError(t, WriteResponse(w, res))
	assert.Contains(t, w.String(), fmt.Sprintf("Content-Length: %d\r\n", len(body)))
}

func TestWriteResponseError(t *testing.T) {
	res := &Response{Status: 200, ContentType: "text/plain", Body: "OK"}
	assert.Error(t, WriteResponse(errWriter{}, res))
}
