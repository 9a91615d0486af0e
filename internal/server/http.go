// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-trip-keeper/internal/config"
	"github.com/MKhiriev/go-trip-keeper/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := listenWithFallback(cfg.HTTPAddress, cfg.PortFallbackAttempts, logger)
	if err != nil {
		return nil, fmt.Errorf("error opening listener: %w", err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

// listenWithFallback binds the configured address, incrementing the port on
// each "address already in use" failure until a free port is found or the
// attempt budget is spent.
func listenWithFallback(address string, attempts int, logger *logger.Logger) (net.Listener, error) {
	host, portStr, err := net.SplitHostPort(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errInvalidAddress, address)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errInvalidAddress, address)
	}

	for i := 0; i < attempts; i++ {
		candidate := net.JoinHostPort(host, strconv.Itoa(port+i))
		listener, err := net.Listen("tcp", candidate)
		if err == nil {
			if i > 0 {
				logger.Warn().
					Str("configured", address).
					Str("bound", candidate).
					Msg("configured port is busy, fell back to the next free one")
			}
			return listener, nil
		}
		logger.Info().Str("address", candidate).Err(err).Msg("port unavailable, trying next")
	}

	return nil, fmt.Errorf("%w: tried %d port(s) starting at %s", errNoFreePort, attempts, address)
}

// Address reports the address the server is actually bound to. It can differ
// from the configured one after a port fallback.
func (h *httpServer) Address() string {
	return h.listener.Addr().String()
}

func (h *httpServer) RunServer() {
	h.logger.Info().Str("address", h.Address()).Msg("HTTP server listening")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Error().Msgf("HTTP server Serve: %v", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); err != nil {
		h.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
