package proxy

// Package proxy implements the sockd listener-side SOCKS5 server.
//
// It contains the per-connection session handler (method negotiation,
// username/password authentication, CONNECT), the bidirectional relay, and
// shared connection plumbing such as the keepalive listener and the relay
// buffer pool.
