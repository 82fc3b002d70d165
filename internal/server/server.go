// Package server implements the one-connection-at-a-time TCP listener that
// logs each parsed request and answers it with a fixed response.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/dchest/uniuri"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"

	"github.com/shapestone/simple-http/internal/config"
	"github.com/shapestone/simple-http/pkg/http"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const connIDLen = 8

// Server accepts connections and handles them one at a time.
type Server struct {
	cfg config.Config
	log zerolog.Logger

	// inspect is http.Inspect outside of tests.
	inspect func(raw string) *http.ParseResult
}

// New returns a server for cfg. cfg is expected to be valid.
func New(cfg config.Config, log zerolog.Logger) *Server {
	return &Server{
		cfg:     cfg,
		log:     log,
		inspect: http.Inspect,
	}
}

// ListenAndServe binds the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is done, then closes ln and
// returns nil. Each connection is handled on its own goroutine, but the next
// connection is not accepted until that goroutine finishes.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()
	defer ln.Close()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	var served uint64
	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info().Uint64("served", served).Msg("shutting down")
				return nil
			}
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("server: accept: %w", err)
		}

		if s.handoff(conn, served+1) {
			served++
		}
	}
}

// handoff runs serveConn on a worker goroutine and waits for it. It reports
// false when the worker panicked.
func (s *Server) handoff(conn net.Conn, n uint64) bool {
	done := make(chan bool, 1)
	go func() {
		ok := false
		defer func() {
			if r := recover(); r != nil {
				s.log.Error().Interface("panic", r).Uint64("conn", n).Msg("connection worker panicked")
			}
			done <- ok
		}()
		s.serveConn(conn, n)
		ok = true
	}()
	return <-done
}

func (s *Server) serveConn(conn net.Conn, n uint64) {
	defer conn.Close()

	log := s.log.With().
		Str("conn_id", uniuri.NewLen(connIDLen)).
		Uint64("conn", n).
		Str("remote", conn.RemoteAddr().String()).
		Logger()

	if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
		log.Warn().Err(err).Msg("set read deadline")
	}

	buf := make([]byte, s.cfg.ReadBufferSize)
	read, err := conn.Read(buf)
	if err != nil && read == 0 {
		log.Warn().Err(err).Msg("read request")
	} else {
		s.handle(log, string(buf[:read]))
	}

	if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
		log.Warn().Err(err).Msg("set write deadline")
	}
	if err := http.NewEncoder(conn).Encode(HelloWorld()); err != nil {
		log.Warn().Err(err).Msg("write response")
		return
	}
	log.Debug().Msg("response written")
}

func (s *Server) handle(log zerolog.Logger, raw string) {
	result := s.inspect(raw)

	warnings := result.Warnings
	if result.Request == nil {
		// The last warning is the error that rejected the request.
		fatal := "malformed request"
		if len(warnings) > 0 {
			fatal = warnings[len(warnings)-1]
			warnings = warnings[:len(warnings)-1]
		}
		for _, w := range warnings {
			log.Debug().Str("warning", w).Msg("parse warning")
		}
		log.Warn().Str("error", fatal).Int("bytes", len(raw)).Msg("request rejected")
		return
	}
	for _, w := range warnings {
		log.Debug().Str("warning", w).Msg("parse warning")
	}

	req := result.Request
	headers := zerolog.Dict()
	for _, name := range req.Headers().Names() {
		headers.Str(name, req.Header(name))
	}
	log.Info().
		Str("method", req.Method().String()).
		Str("path", req.Path()).
		Str("version", req.Version().String()).
		Dict("headers", headers).
		Int("body_bytes", len(req.Body())).
		Msg("request")

	if s.cfg.DumpRequests {
		s.dump(log, req)
	}
}

func (s *Server) dump(log zerolog.Logger, req *http.Request) {
	data, err := json.Marshal(http.NodeToInterface(http.RequestToNode(req)))
	if err != nil {
		log.Warn().Err(err).Msg("dump request")
		return
	}
	log.Debug().RawJSON("request", data).Msg("request dump")
}
