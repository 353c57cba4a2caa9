package proxy

import (
	"go.uber.org/zap"

	"github.com/sockd/sockd/internal/dialer"
)

type Config struct {
	// Username and Password are the single credential pair every client
	// must present. Compared with exact string equality.
	Username string
	Password string

	Dialer dialer.Dialer

	// Logger receives per-session and relay events. Nil means no logging.
	Logger *zap.Logger
}
