package socks5

import (
	"io"
)

// UserPassRequest is the RFC 1929 username/password sub-negotiation
// request. Both fields are length-prefixed on the wire, so each is at most
// 255 bytes.
type UserPassRequest struct {
	Username string
	Password string
}

// ReadUserPassRequest decodes `VER ULEN UNAME PLEN PASSWD`.
func ReadUserPassRequest(r io.Reader) (*UserPassRequest, error) {
	ver := make([]byte, 1)
	if _, err := io.ReadFull(r, ver); err != nil {
		return nil, truncatedErr("userpass", err)
	}
	if ver[0] != UserPassVer {
		return nil, protocolErrf("userpass.version", "got %#02x, want %#02x", ver[0], UserPassVer)
	}

	username, err := readLengthPrefixed(r, "userpass.username")
	if err != nil {
		return nil, err
	}
	password, err := readLengthPrefixed(r, "userpass.password")
	if err != nil {
		return nil, err
	}

	return &UserPassRequest{Username: string(username), Password: string(password)}, nil
}

// WriteUserPassRequest encodes the client side of the sub-negotiation.
func WriteUserPassRequest(w io.Writer, req *UserPassRequest) error {
	buf := make([]byte, 0, 3+len(req.Username)+len(req.Password))
	buf = append(buf, UserPassVer, byte(len(req.Username)))
	buf = append(buf, req.Username...)
	buf = append(buf, byte(len(req.Password)))
	buf = append(buf, req.Password...)
	_, err := w.Write(buf)
	return err
}

// WriteUserPassReply encodes `VER STATUS`: 0x00 for success, 0xFF for
// failure.
func WriteUserPassReply(w io.Writer, ok bool) error {
	status := UserPassStatusFailure
	if ok {
		status = UserPassStatusSuccess
	}
	_, err := w.Write([]byte{UserPassVer, status})
	return err
}

// ReadUserPassReply decodes the sub-negotiation reply and reports whether
// authentication succeeded.
func ReadUserPassReply(r io.Reader) (bool, error) {
	buf := make([]byte, 2)
	if _, err := io.ReadFull(r, buf); err != nil {
		return false, truncatedErr("userpass_reply", err)
	}
	if buf[0] != UserPassVer {
		return false, protocolErrf("userpass_reply.version", "got %#02x, want %#02x", buf[0], UserPassVer)
	}
	return buf[1] == UserPassStatusSuccess, nil
}

func readLengthPrefixed(r io.Reader, field string) ([]byte, error) {
	n := make([]byte, 1)
	if _, err := io.ReadFull(r, n); err != nil {
		return nil, truncatedErr(field, err)
	}
	buf := make([]byte, int(n[0]))
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, truncatedErr(field, err)
	}
	return buf, nil
}
