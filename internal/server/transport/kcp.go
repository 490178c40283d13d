package transport

import (
	"fmt"
	"net"

	"github.com/xtaci/kcp-go/v5"
)

// KCPListener accepts reliable UDP sessions that carry the same byte stream
// as a TCP connection.
type KCPListener struct {
	*kcp.Listener
}

// ListenKCP listens for KCP sessions on addr without FEC or encryption.
func ListenKCP(addr string) (*KCPListener, error) {
	l, err := kcp.ListenWithOptions(addr, nil, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("listen kcp on %s: %w", addr, err)
	}
	return &KCPListener{Listener: l}, nil
}

// Accept returns the next session tuned for stream use: no message
// boundaries and fast retransmit.
func (l *KCPListener) Accept() (net.Conn, error) {
	s, err := l.AcceptKCP()
	if err != nil {
		return nil, err
	}
	s.SetStreamMode(true)
	s.SetWriteDelay(false)
	s.SetNoDelay(1, 20, 2, 1)
	s.SetWindowSize(512, 512)
	s.SetMtu(1400)
	return s, nil
}
