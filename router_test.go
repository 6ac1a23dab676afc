package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainRouter(t *testing.T) {
	ro := PlainRouter()

	rt := ro.Route("/health")
	assert.Equal(t, 200, rt.Status)
	assert.Equal(t, "text/plain", rt.ContentType)
	assert.Equal(t, "OK", rt.Body)

	rt = ro.Route("/missing")
	assert.Equal(t, 404, rt.Status)
	assert.Equal(t, "Not Found", rt.Body)
}

func TestRouterIgnoresQuery(t *testing.T) {
	rt := PlainRouter().Route("/health?verbose=1")
	assert.Equal(t, 200, rt.Status)
}

func TestRouterFirstMatchWins(t *testing.T) {
	ro := NewRouter(
		[]Route{
			{Pattern: "/dup", Status: 200, ContentType: "text/plain", Body: "first"},
			{Pattern: "/dup", Status: 500, ContentType: "text/plain", Body: "second"},
		},
		Route{Status: 404, ContentType: "text/plain", Body: "Not Found"},
	)
	assert.Equal(t, "first", ro.Route("/dup").Body)
}

func TestRouterEmptyTarget(t *testing.T) {
	rt := PlainRouter().Route("")
	assert.Equal(t, 404, rt.Status)
}

func TestJSONRouter(t *testing.T) {
	ro := JSONRouter()

	tests := []struct {
		target string
		status int
		body   string
	}{
		{"/", 200, `{"message":"Stub API Server","version":"1.0.0","endpoints":["/","/health","/users"]}`},
		{"/health", 200, `{"status":"healthy"}`},
		{"/users", 200, `{"users":[{"id":1,"name":"Alice","email":"alice@example.com"},{"id":2,"name":"Bob","email":"bob@example.com"}]}`},
		{"/nope", 404, `{"error":"Not Found"}`},
	}
	for _, tt := range tests {
		rt := ro.Route(tt.target)
		assert.Equal(t, tt.status, rt.Status, tt.target)
		assert.Equal(t, "application/json", rt.ContentType, tt.target)
		assert.JSONEq(t, tt.body, rt.Body, tt.target)
	}
}
