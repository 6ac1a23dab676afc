package main

import "fmt"

// Request is what a single bounded read of the client connection yields.
// Only the request line is tokenized; headers and body are never inspected.
type Request struct {
	Method  string
	Target  string
	Version string
	Raw     []byte
}

// Route maps an exact request path to a canned response.
type Route struct {
	Pattern     string
	Status      int
	ContentType string
	Body        string
}

// Response is a Route stripped of its pattern, ready for serialization.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

func (r Route) Response() *Response {
	return &Response{
		Status:      r.Status,
		ContentType: r.ContentType,
		Body:        r.Body,
	}
}

var statusPhrases = map[int]string{
	200: "OK",
	201: "Created",
	400: "Bad Request",
	404: "Not Found",
	500: "Internal Server Error",
}

// StatusPhrase returns the reason phrase for a status code. Codes outside
// the canned set fall back to the bare code so the status line stays valid.
func StatusPhrase(status int) string {
	if p, ok := statusPhrases[status]; ok {
		return p
	}
	return fmt.Sprintf("status %d", status)
}
