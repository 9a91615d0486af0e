// Package http implements the relay's HTTP transport layer.
//
// It exposes route wiring, request handlers, and middleware for the chat,
// speech synthesis, health, and version endpoints. Cross-cutting concerns
// such as request tracing, access logging, CORS, and per-client rate
// limiting are handled here before requests are delegated to the service
// layer.
package http
