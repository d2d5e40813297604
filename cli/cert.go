package cli

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mandelsoft/vfs/pkg/vfs"

	actx "go.hackfix.me/dashfeed/app/context"
	aerrors "go.hackfix.me/dashfeed/app/errors"
	"go.hackfix.me/dashfeed/crypto"
)

// The Cert command manages the TLS certificate and key used by the web server.
type Cert struct {
	New struct {
		CN         string        `default:"dashfeed" help:"The certificate subject common name."`
		SAN        []string      `help:"Subject alternative names to include in the certificate. Defaults to 'localhost'."`
		Expiration time.Duration `type:"xduration" default:"90d" help:"Time duration the certificate is valid for."`
		CertFile   string        `default:"server.crt" help:"Path the PEM-encoded certificate will be written to."`
		KeyFile    string        `default:"server.key" help:"Path the PEM-encoded private key will be written to."`
		Save       bool          `help:"Store the file paths in the configuration file."`
	} `kong:"cmd,help='Generate a new self-signed TLS certificate.'"`
}

// Run the cert command.
func (c *Cert) Run(appCtx *actx.Context) error {
	san := c.New.SAN
	if len(san) == 0 {
		san = []string{"localhost"}
	}
	expiration := appCtx.TimeNow().Add(c.New.Expiration)
	certPEM, keyPEM, err := crypto.NewTLSCert(c.New.CN, san, expiration)
	if err != nil {
		return fmt.Errorf("failed generating the server TLS certificate: %w", err)
	}

	if err = writeFile(appCtx.FS, c.New.CertFile, certPEM, 0o644); err != nil {
		return aerrors.NewWithCause("failed writing TLS certificate file", err,
			"path", c.New.CertFile)
	}
	if err = writeFile(appCtx.FS, c.New.KeyFile, keyPEM, 0o600); err != nil {
		return aerrors.NewWithCause("failed writing TLS key file", err,
			"path", c.New.KeyFile)
	}

	if c.New.Save {
		appCtx.Config.Server.TLSCertFile = sql.Null[string]{V: c.New.CertFile, Valid: true}
		appCtx.Config.Server.TLSKeyFile = sql.Null[string]{V: c.New.KeyFile, Valid: true}
		if err = appCtx.Config.Save(); err != nil {
			return aerrors.NewWithCause("failed saving TLS file paths", err,
				"path", appCtx.Config.Path())
		}
	}

	fmt.Fprintf(appCtx.Stdout, "Certificate: %s\nPrivate key: %s\n",
		c.New.CertFile, c.New.KeyFile)

	return nil
}

func writeFile(fsys vfs.FileSystem, path string, data []byte, perm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return vfs.WriteFile(fsys, path, data, perm)
}
