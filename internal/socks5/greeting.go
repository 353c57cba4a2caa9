package socks5

import (
	"io"
)

// Greeting is the client's initial message listing the authentication
// methods it supports.
type Greeting struct {
	Methods []byte
}

// HasMethod reports whether the client offered the given method.
func (g *Greeting) HasMethod(m byte) bool {
	for _, v := range g.Methods {
		if v == m {
			return true
		}
	}
	return false
}

// ReadGreeting decodes `VER NMETHODS METHODS...`. A greeting offering zero
// methods is treated as malformed.
func ReadGreeting(r io.Reader) (*Greeting, error) {
	hdr := make([]byte, 2)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, truncatedErr("greeting", err)
	}
	if hdr[0] != Version {
		return nil, protocolErrf("greeting.version", "got %#02x, want %#02x", hdr[0], Version)
	}
	if hdr[1] == 0 {
		return nil, protocolErrf("greeting.nmethods", "no methods offered")
	}

	methods := make([]byte, int(hdr[1]))
	if _, err := io.ReadFull(r, methods); err != nil {
		return nil, truncatedErr("greeting.methods", err)
	}

	return &Greeting{Methods: methods}, nil
}

// WriteGreeting encodes the client side of the method negotiation.
func WriteGreeting(w io.Writer, g *Greeting) error {
	buf := make([]byte, 0, 2+len(g.Methods))
	buf = append(buf, Version, byte(len(g.Methods)))
	buf = append(buf, g.Methods...)
	_, err := w.Write(buf)
	return err
}

// WriteMethodSelection encodes the server's `VER METHOD` selection reply.
func WriteMethodSelection(w io.Writer, method byte) error {
	_, err := w.Write([]byte{Version, method})
	return err
}

// ReadMethodSelection decodes the server's method selection reply and
// returns the selected method.
func ReadMethodSelection(r io.Reader) (byte, error) {
	buf := make([]byte, 2)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, truncatedErr("method_selection", err)
	}
	if buf[0] != Version {
		return 0, protocolErrf("method_selection.version", "got %#02x, want %#02x", buf[0], Version)
	}
	return buf[1], nil
}
