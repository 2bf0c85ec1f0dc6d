// Package http implements the HTTP transport layer of the edge service.
//
// It exposes route wiring, the static asset router for the frontend bundle,
// and middleware used in front of it. Cross-cutting concerns such as Basic
// Auth enforcement for the protected path prefixes, request tracing, access
// logging, and request metrics are handled in this package.
package http
