package dialer

import (
	"context"
	"fmt"
	"net"
)

type directDialer struct {
	cfg   Config
	local net.Addr
}

// NewDirectDialer builds a Dialer that connects straight to the target. If
// cfg.BindIP names a local IP, every outbound socket is bound to it before
// connecting.
func NewDirectDialer(cfg Config) (Dialer, error) {
	d := &directDialer{cfg: cfg}

	if cfg.BindIP != "" && cfg.BindIP != "0.0.0.0" {
		ip := net.ParseIP(cfg.BindIP)
		if ip == nil {
			return nil, fmt.Errorf("invalid bind IP %q", cfg.BindIP)
		}
		d.local = &net.TCPAddr{IP: ip}
	}

	return d, nil
}

func (d *directDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	dd := net.Dialer{Timeout: d.cfg.DialTimeout, LocalAddr: d.local}

	conn, err := dd.DialContext(ctx, network, address)
	if err != nil {
		return nil, fmt.Errorf("dial %s %s: %w", network, address, err)
	}

	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.SetKeepAliveConfig(d.cfg.KeepAlive)
	}

	return conn, nil
}
