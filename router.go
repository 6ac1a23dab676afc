package main

import "strings"

// Router holds an ordered, immutable route table. It is built once at
// startup and shared by all workers without locking.
type Router struct {
	routes   []Route
	notFound Route
}

func NewRouter(routes []Route, notFound Route) *Router {
	return &Router{routes: routes, notFound: notFound}
}

// Route matches the target path against the table in order; first match
// wins. The query string is ignored. A miss returns the default route.
func (ro *Router) Route(target string) Route {
	path, _, _ := strings.Cut(target, "?")
	for _, rt := range ro.routes {
		if rt.Pattern == path {
			return rt
		}
	}
	return ro.notFound
}

// PlainRouter serves the minimal health-probe table.
func PlainRouter() *Router {
	return NewRouter(
		[]Route{
			{Pattern: "/health", Status: 200, ContentType: "text/plain", Body: "OK"},
		},
		Route{Status: 404, ContentType: "text/plain", Body: "Not Found"},
	)
}

// JSONRouter serves the richer API-shaped table.
func JSONRouter() *Router {
	return NewRouter(
		[]Route{
			{
				Pattern:     "/",
				Status:      200,
				ContentType: "application/json",
				Body:        `{"message":"Stub API Server","version":"1.0.0","endpoints":["/","/health","/users"]}`,
			},
			{
				Pattern:     "/health",
				Status:      200,
				ContentType: "application/json",
				Body:        `{"status":"healthy"}`,
			},
			{
				Pattern:     "/users",
				Status:      200,
				ContentType: "application/json",
				Body:        `{"users":[{"id":1,"name":"Alice","email":"alice@example.com"},{"id":2,"name":"Bob","email":"bob@example.com"}]}`,
			},
		},
		Route{Status: 404, ContentType: "application/json", Body: `{"error":"Not Found"}`},
	)
}
