package proxy

import (
	"context"
	"net"

	"go.uber.org/zap"

	"github.com/sockd/sockd/internal/socks5"
)

// SOCKS5Server accepts client connections and runs one session per
// connection: negotiate, authenticate, CONNECT, relay.
type SOCKS5Server struct {
	ctx context.Context
	cfg Config
	log *zap.Logger
}

func NewSOCKS5Server(ctx context.Context, cfg Config) *SOCKS5Server {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &SOCKS5Server{ctx: ctx, cfg: cfg, log: log}
}

// Serve accepts connections from ln until it fails, handling each session
// on its own goroutine. A failed session never affects other sessions or
// the accept loop.
func (s *SOCKS5Server) Serve(ln net.Listener) error {
	for {
		c, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(c)
	}
}

// handleConn drives one session through the handshake states in order:
// greeting, method selection, username/password auth, CONNECT, relay. Any
// failure closes the client connection; depending on the state this may
// happen without any reply bytes at all.
func (s *SOCKS5Server) handleConn(conn net.Conn) {
	defer conn.Close()

	log := s.log.With(zap.String("client", conn.RemoteAddr().String()))

	greeting, err := socks5.ReadGreeting(conn)
	if err != nil {
		log.Debug("greeting failed", zap.Error(err))
		return
	}

	// Only username/password auth is served. A client that does not offer
	// it gets no method-selection reply; the connection just closes.
	if !greeting.HasMethod(socks5.MethodUsernamePassword) {
		log.Debug("client did not offer username/password auth")
		return
	}
	if err := socks5.WriteMethodSelection(conn, socks5.MethodUsernamePassword); err != nil {
		return
	}

	// One auth attempt per connection; a mismatch gets the failure status
	// and the connection closes.
	creds, err := socks5.ReadUserPassRequest(conn)
	if err != nil {
		log.Debug("auth request failed", zap.Error(err))
		return
	}
	if creds.Username != s.cfg.Username || creds.Password != s.cfg.Password {
		log.Info("authentication rejected", zap.String("username", creds.Username))
		_ = socks5.WriteUserPassReply(conn, false)
		return
	}
	if err := socks5.WriteUserPassReply(conn, true); err != nil {
		return
	}

	req, err := socks5.ReadRequest(conn)
	if err != nil {
		log.Debug("request failed", zap.Error(err))
		return
	}
	// Non-CONNECT commands are refused by closing, with no reply and no
	// outbound dial.
	if req.Cmd != socks5.CmdConnect {
		log.Debug("unsupported command", zap.Uint8("cmd", req.Cmd))
		return
	}

	target, err := s.cfg.Dialer.DialContext(s.ctx, "tcp", req.Target())
	if err != nil {
		log.Info("connect failed", zap.String("target", req.Target()), zap.Error(err))
		_ = socks5.WriteReply(conn, socks5.RepConnectionRefused, req.ATYP, nil)
		return
	}
	defer target.Close()

	// The success reply reports the outbound socket's locally bound
	// address and port, not the target's.
	bnd, _ := target.LocalAddr().(*net.TCPAddr)
	if err := socks5.WriteReply(conn, socks5.RepSuccess, req.ATYP, bnd); err != nil {
		log.Debug("reply write failed", zap.Error(err))
		return
	}

	log.Info("connected", zap.String("target", req.Target()), zap.Stringer("bound", target.LocalAddr()))

	sent, received := Relay(conn, target, log)

	log.Info("session finished",
		zap.String("target", req.Target()),
		zap.Int64("bytes_sent", sent.Bytes),
		zap.Bool("sent_clean", sent.Clean()),
		zap.Int64("bytes_received", received.Bytes),
		zap.Bool("received_clean", received.Clean()))
}
