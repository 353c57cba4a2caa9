package socks5

// Package socks5 implements the SOCKS5 wire format spoken by sockd: method
// negotiation, username/password sub-negotiation (RFC 1929), and the CONNECT
// request/reply exchange.
//
// It is a codec only: every operation reads from or writes to a supplied
// io.Reader/io.Writer and carries no connection state, buffering policy, or
// timeouts. Protocol constants are taken from github.com/txthinking/socks5
// where they match this wire format.
//
// Two deliberate divergences from a by-the-book RFC 1928/1929
// implementation, kept for compatibility with the deployed clients:
//
//   - The username/password failure status byte is 0xFF, not 0x01.
//   - Replies are always the fixed 10-byte IPv4-shaped layout, with the
//     request's ATYP byte echoed verbatim, even when the request carried a
//     domain-name target.
