package server

import (
	"bufio"
	"crypto/tls"
	"log/slog"
	"net"
)

// PeekConn is a buffered Conn for peeking into the connection.
type PeekConn struct {
	net.Conn
	r *bufio.Reader
}

// Read reads data from the connection using the buffered reader, so any
// previously peeked data is properly consumed.
func (c *PeekConn) Read(b []byte) (int, error) {
	return c.r.Read(b)
}

// Peek returns the next n bytes without advancing the reader.
// The bytes stop being valid at the next read call.
func (c *PeekConn) Peek(n int) ([]byte, error) {
	return c.r.Peek(n)
}

func newPeekConn(c net.Conn) *PeekConn {
	return &PeekConn{c, bufio.NewReader(c)}
}

// HybridListener inspects the first bytes of the connection to determine
// whether to serve unencrypted HTTP or TLS. This allows using the same TCP
// port for both, which reduces the configuration burden on the user.
type HybridListener struct {
	net.Listener
	tlsConfig *tls.Config
	logger    *slog.Logger
}

// Accept waits for and returns the next connection to the listener. If the
// first bytes look like a TLS handshake, the connection is wrapped in a TLS
// server, otherwise it is served as plain HTTP.
func (ln *HybridListener) Accept() (net.Conn, error) {
	conn, err := ln.Listener.Accept()
	if err != nil {
		//nolint:wrapcheck // This is fine.
		return nil, err
	}

	peekConn := newPeekConn(conn)

	b, err := peekConn.Peek(3)
	if err != nil || len(b) < 3 {
		// Not enough data to sniff the protocol; let the HTTP server surface
		// the read error.
		return peekConn, nil
	}

	// A TLS record starts with the handshake content type, followed by the
	// protocol version.
	if b[0] == 0x16 && b[1] == 0x03 && b[2] <= 0x03 {
		ln.logger.Debug("accepting TLS connection")
		return tls.Server(peekConn, ln.tlsConfig), nil
	}

	ln.logger.Debug("accepting HTTP connection")
	return peekConn, nil
}
