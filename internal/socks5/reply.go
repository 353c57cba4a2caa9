package socks5

import (
	"encoding/binary"
	"io"
	"net"
)

// Reply is a decoded server reply to a command request.
type Reply struct {
	Rep     byte
	ATYP    byte
	BndIP   net.IP
	BndPort uint16
}

// WriteReply encodes `VER REP RSV ATYP BND.ADDR BND.PORT` as the fixed
// 10-byte layout: a 4-byte address field regardless of atyp, which echoes
// the request's address type verbatim. A successful reply carries the
// outbound socket's local IPv4 address and port in bnd; a nil or non-IPv4
// bnd (and every failure reply) carries zeros.
func WriteReply(w io.Writer, rep byte, atyp byte, bnd *net.TCPAddr) error {
	buf := make([]byte, 10)
	buf[0] = Version
	buf[1] = rep
	buf[3] = atyp

	if bnd != nil {
		if ip4 := bnd.IP.To4(); ip4 != nil {
			copy(buf[4:8], ip4)
		}
		binary.BigEndian.PutUint16(buf[8:10], uint16(bnd.Port))
	}

	_, err := w.Write(buf)
	return err
}

// ReadReply decodes the fixed 10-byte reply layout.
func ReadReply(r io.Reader) (*Reply, error) {
	buf := make([]byte, 10)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, truncatedErr("reply", err)
	}
	if buf[0] != Version {
		return nil, protocolErrf("reply.version", "got %#02x, want %#02x", buf[0], Version)
	}

	ip := make(net.IP, 4)
	copy(ip, buf[4:8])

	return &Reply{
		Rep:     buf[1],
		ATYP:    buf[3],
		BndIP:   ip,
		BndPort: binary.BigEndian.Uint16(buf[8:10]),
	}, nil
}
