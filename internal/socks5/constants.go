package socks5

import (
	txsocks5 "github.com/txthinking/socks5"
)

// Version is the SOCKS protocol version byte in every message.
const Version = txsocks5.Ver

// Authentication methods.
const (
	MethodUsernamePassword = txsocks5.MethodUsernamePassword
)

// Username/password sub-negotiation (RFC 1929).
const (
	UserPassVer           = txsocks5.UserPassVer
	UserPassStatusSuccess = txsocks5.UserPassStatusSuccess

	// UserPassStatusFailure is 0xFF on this wire, not the 0x01 the
	// library defines. RFC 1929 only requires a nonzero byte.
	UserPassStatusFailure byte = 0xFF
)

// Commands.
const (
	CmdConnect = txsocks5.CmdConnect
)

// Address types.
const (
	ATYPIPv4   = txsocks5.ATYPIPv4
	ATYPDomain = txsocks5.ATYPDomain
	ATYPIPv6   = txsocks5.ATYPIPv6
)

// Reply codes. RepConnectionRefused (0x05) is sent for every failed
// outbound dial, whatever the underlying cause.
const (
	RepSuccess           = txsocks5.RepSuccess
	RepConnectionRefused = txsocks5.RepConnectionRefused
)
