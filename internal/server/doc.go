// Package server wires and runs the edge service's HTTP transport.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown with connection draining.
package server
