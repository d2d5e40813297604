package context

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mandelsoft/vfs/pkg/vfs"

	cfg "go.hackfix.me/dashfeed/app/config"
)

// Context contains common objects used by the application. It is passed around
// the application to avoid direct dependencies on external systems, and make
// testing easier.
type Context struct {
	Ctx     context.Context // global context
	FS      vfs.FileSystem  // filesystem
	Env     Environment     // process environment
	Logger  *slog.Logger    // global logger
	Config  *cfg.Config
	TimeNow func() time.Time

	// Standard streams
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Metadata
	Version *VersionInfo
}

// ServerTLSCert loads the web server certificate and key pair from the PEM
// files set in the configuration. It returns nil if no pair is configured.
func (c *Context) ServerTLSCert() (*tls.Certificate, error) {
	srv := c.Config.Server
	if !srv.TLSCertFile.Valid || !srv.TLSKeyFile.Valid {
		return nil, nil
	}

	certPEM, err := vfs.ReadFile(c.FS, srv.TLSCertFile.V)
	if err != nil {
		return nil, fmt.Errorf("failed reading TLS certificate file: %w", err)
	}
	keyPEM, err := vfs.ReadFile(c.FS, srv.TLSKeyFile.V)
	if err != nil {
		return nil, fmt.Errorf("failed reading TLS key file: %w", err)
	}

	cert, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed parsing TLS key pair: %w", err)
	}

	return &cert, nil
}
