package server

import (
	"crypto/tls"
	"log/slog"
	"net"
	"net/http"
	"time"

	actx "go.hackfix.me/dashfeed/app/context"
	"go.hackfix.me/dashfeed/board"
	"go.hackfix.me/dashfeed/crypto"
	"go.hackfix.me/dashfeed/web/server/handler"
	"go.hackfix.me/dashfeed/web/server/middleware"
)

// Server is a wrapper around http.Server with some custom behavior.
type Server struct {
	*http.Server
	logger *slog.Logger
}

// New returns a new web Server instance that will listen on addr. If tlsCert
// is provided, the server will also accept TLS connections on the same port.
func New(appCtx *actx.Context, addr string, tlsCert *tls.Certificate) *Server {
	var tlsCfg *tls.Config
	if tlsCert != nil {
		tlsCfg = crypto.DefaultTLSConfig()
		tlsCfg.Certificates = []tls.Certificate{*tlsCert}
	}

	readTimeout, writeTimeout := 30*time.Second, time.Minute
	if cfg := appCtx.Config; cfg != nil {
		if cfg.Server.ReadTimeout.Valid {
			readTimeout = cfg.Server.ReadTimeout.V
		}
		if cfg.Server.WriteTimeout.Valid {
			writeTimeout = cfg.Server.WriteTimeout.V
		}
	}

	logger := appCtx.Logger.With("component", "web-server")
	srv := &Server{
		Server: &http.Server{
			Handler:           SetupHandlers(appCtx, logger),
			Addr:              addr,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			TLSConfig:         tlsCfg,
		},
		logger: logger,
	}

	return srv
}

// ListenAndServe starts the web server. It stores the actual listen address,
// which is convenient when the address is dynamically determined by the
// system (e.g. ':0').
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	s.Addr = ln.Addr().String()
	s.logger.Info("started listener", "address", s.Addr)

	if s.TLSConfig != nil {
		ln = &HybridListener{
			Listener:  ln,
			tlsConfig: s.TLSConfig,
			logger:    s.logger,
		}
	}

	//nolint:wrapcheck // This is fine.
	return s.Serve(ln)
}

// SetupHandlers configures the server HTTP handlers.
func SetupHandlers(appCtx *actx.Context, logger *slog.Logger) http.Handler {
	var apiKey string
	if appCtx.Config != nil && appCtx.Config.Auth.APIKey.Valid {
		apiKey = appCtx.Config.Auth.APIKey.V
	}

	b := board.New(appCtx.TimeNow(), appCtx.TimeNow)
	mux := http.NewServeMux()
	mux.Handle(board.Prefix+"/", http.StripPrefix(board.Prefix,
		b.Handler(
			handler.WithAuth(handler.APIKeyAuth(apiKey)),
			handler.WithLogger(logger),
		)))

	return middleware.Chain(mux, middleware.RequestID(), middleware.Logger(logger))
}
