package socks5

import (
	"encoding/binary"
	"io"
	"net"
	"strconv"
)

// Request is a decoded client command request. Addr is a dotted-quad IPv4
// literal or a domain name, depending on ATYP.
type Request struct {
	Cmd  byte
	ATYP byte
	Addr string
	Port uint16
}

// Target returns the host:port string to dial.
func (req *Request) Target() string {
	return net.JoinHostPort(req.Addr, strconv.Itoa(int(req.Port)))
}

// ReadRequest decodes `VER CMD RSV ATYP DST.ADDR DST.PORT`. Only IPv4 and
// domain-name address types are accepted; any other ATYP (including IPv6)
// fails the decode. The command byte is not validated here; command policy
// belongs to the session handler.
func ReadRequest(r io.Reader) (*Request, error) {
	hdr := make([]byte, 4)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, truncatedErr("request", err)
	}
	if hdr[0] != Version {
		return nil, protocolErrf("request.version", "got %#02x, want %#02x", hdr[0], Version)
	}

	req := &Request{Cmd: hdr[1], ATYP: hdr[3]}

	switch req.ATYP {
	case ATYPIPv4:
		addr := make([]byte, 4)
		if _, err := io.ReadFull(r, addr); err != nil {
			return nil, truncatedErr("request.addr", err)
		}
		req.Addr = net.IP(addr).String()
	case ATYPDomain:
		name, err := readLengthPrefixed(r, "request.addr")
		if err != nil {
			return nil, err
		}
		req.Addr = string(name)
	default:
		return nil, protocolErrf("request.atyp", "unsupported address type %#02x", req.ATYP)
	}

	port := make([]byte, 2)
	if _, err := io.ReadFull(r, port); err != nil {
		return nil, truncatedErr("request.port", err)
	}
	req.Port = binary.BigEndian.Uint16(port)

	return req, nil
}

// WriteRequest encodes the client side of the command request.
func WriteRequest(w io.Writer, req *Request) error {
	buf := make([]byte, 0, 4+1+len(req.Addr)+2)
	buf = append(buf, Version, req.Cmd, 0x00, req.ATYP)

	switch req.ATYP {
	case ATYPIPv4:
		ip := net.ParseIP(req.Addr).To4()
		if ip == nil {
			return protocolErrf("request.addr", "not an IPv4 literal: %q", req.Addr)
		}
		buf = append(buf, ip...)
	case ATYPDomain:
		buf = append(buf, byte(len(req.Addr)))
		buf = append(buf, req.Addr...)
	default:
		return protocolErrf("request.atyp", "unsupported address type %#02x", req.ATYP)
	}

	buf = binary.BigEndian.AppendUint16(buf, req.Port)
	_, err := w.Write(buf)
	return err
}
