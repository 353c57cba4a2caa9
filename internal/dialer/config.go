package dialer

import (
	"net"
	"time"
)

type Config struct {
	// DialTimeout bounds outbound DNS lookup and TCP connect. Zero means
	// no timeout.
	DialTimeout time.Duration

	// BindIP is the local IP outbound connections are bound to before
	// connecting. Empty or "0.0.0.0" means no explicit bind.
	BindIP string

	KeepAlive net.KeepAliveConfig
}
