package dialer

// Package dialer provides the outbound dialing implementation used by sockd.
//
// Dialers implement a small interface (DialContext) and are used by the
// SOCKS5 server to establish outbound connections on a client's behalf,
// optionally bound to a configured local IP.
