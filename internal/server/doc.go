// Package server wires and runs the relay's HTTP server.
//
// It handles listener setup with port fallback, startup, signal handling,
// and graceful shutdown.
package server
