package socks5

import (
	"bytes"
	"errors"
	"net"
	"testing"
)

func TestGreetingRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := &Greeting{Methods: []byte{0x00, 0x02}}
	if err := WriteGreeting(&buf, in); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x05, 0x02, 0x00, 0x02}) {
		t.Fatalf("unexpected wire bytes % x", buf.Bytes())
	}

	out, err := ReadGreeting(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out.Methods, in.Methods) {
		t.Fatalf("methods % x != % x", out.Methods, in.Methods)
	}
	if !out.HasMethod(MethodUsernamePassword) {
		t.Fatal("expected username/password method to be offered")
	}
	if out.HasMethod(0x7f) {
		t.Fatal("unexpected method reported as offered")
	}
}

func TestReadGreetingRejects(t *testing.T) {
	bad := [][]byte{
		{0x04, 0x01, 0x00}, // wrong version
		{0x05, 0x00},       // zero methods
		{0x05},             // truncated header
		{0x05, 0x03, 0x00}, // truncated method list
		{},
	}
	for _, wire := range bad {
		_, err := ReadGreeting(bytes.NewReader(wire))
		var perr *ProtocolError
		if !errors.As(err, &perr) {
			t.Errorf("greeting % x: got %v, want ProtocolError", wire, err)
		}
	}
}

func TestMethodSelectionRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteMethodSelection(&buf, MethodUsernamePassword); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x05, 0x02}) {
		t.Fatalf("unexpected wire bytes % x", buf.Bytes())
	}
	method, err := ReadMethodSelection(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if method != MethodUsernamePassword {
		t.Fatalf("method = %#02x, want %#02x", method, MethodUsernamePassword)
	}
}

func TestUserPassRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := &UserPassRequest{Username: "abc", Password: "defg"}
	if err := WriteUserPassRequest(&buf, in); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x01, 3, 'a', 'b', 'c', 4, 'd', 'e', 'f', 'g'}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wire bytes % x, want % x", buf.Bytes(), want)
	}

	out, err := ReadUserPassRequest(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Fatalf("round trip %+v != %+v", out, in)
	}
}

func TestUserPassEmptyFields(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUserPassRequest(&buf, &UserPassRequest{}); err != nil {
		t.Fatal(err)
	}
	out, err := ReadUserPassRequest(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if out.Username != "" || out.Password != "" {
		t.Fatalf("expected empty credentials, got %+v", out)
	}
}

func TestReadUserPassRejects(t *testing.T) {
	bad := [][]byte{
		{0x05, 1, 'a', 1, 'b'}, // wrong sub-negotiation version
		{0x01, 3, 'a', 'b'},    // truncated username
		{0x01, 1, 'a', 2, 'x'}, // truncated password
		{0x01},                 // missing lengths
	}
	for _, wire := range bad {
		_, err := ReadUserPassRequest(bytes.NewReader(wire))
		var perr *ProtocolError
		if !errors.As(err, &perr) {
			t.Errorf("userpass % x: got %v, want ProtocolError", wire, err)
		}
	}
}

func TestUserPassReplyBytes(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteUserPassReply(&buf, true); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0x00}) {
		t.Fatalf("success reply % x", buf.Bytes())
	}
	if ok, err := ReadUserPassReply(&buf); err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}

	buf.Reset()
	if err := WriteUserPassReply(&buf, false); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x01, 0xFF}) {
		t.Fatalf("failure reply % x", buf.Bytes())
	}
	if ok, err := ReadUserPassReply(&buf); err != nil || ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
}

func TestRequestRoundTripIPv4(t *testing.T) {
	var buf bytes.Buffer
	in := &Request{Cmd: CmdConnect, ATYP: ATYPIPv4, Addr: "8.8.4.4", Port: 53}
	if err := WriteRequest(&buf, in); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x05, 0x01, 0x00, 0x01, 8, 8, 4, 4, 0, 53}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wire bytes % x, want % x", buf.Bytes(), want)
	}

	out, err := ReadRequest(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Fatalf("round trip %+v != %+v", out, in)
	}
	if out.Target() != "8.8.4.4:53" {
		t.Fatalf("target %q", out.Target())
	}
}

func TestRequestRoundTripDomain(t *testing.T) {
	var buf bytes.Buffer
	in := &Request{Cmd: CmdConnect, ATYP: ATYPDomain, Addr: "example.com", Port: 443}
	if err := WriteRequest(&buf, in); err != nil {
		t.Fatal(err)
	}

	out, err := ReadRequest(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Fatalf("round trip %+v != %+v", out, in)
	}
	if out.Target() != "example.com:443" {
		t.Fatalf("target %q", out.Target())
	}
}

func TestReadRequestRejects(t *testing.T) {
	ipv6 := append([]byte{0x05, 0x01, 0x00, 0x04}, make([]byte, 18)...)
	bad := [][]byte{
		{0x04, 0x01, 0x00, 0x01, 1, 2, 3, 4, 0, 80}, // wrong version
		ipv6,                                    // IPv6 is not served
		{0x05, 0x01, 0x00, 0x02, 0, 0},          // unknown address type
		{0x05, 0x01, 0x00, 0x01, 1, 2},          // truncated IPv4
		{0x05, 0x01, 0x00, 0x03, 5, 'a', 'b'},   // truncated domain
		{0x05, 0x01, 0x00, 0x01, 1, 2, 3, 4, 0}, // truncated port
		{0x05, 0x01},                            // truncated header
	}
	for _, wire := range bad {
		_, err := ReadRequest(bytes.NewReader(wire))
		var perr *ProtocolError
		if !errors.As(err, &perr) {
			t.Errorf("request % x: got %v, want ProtocolError", wire, err)
		}
	}
}

// ReadRequest leaves command validation to the caller.
func TestReadRequestAcceptsAnyCommand(t *testing.T) {
	wire := []byte{0x05, 0x02, 0x00, 0x01, 127, 0, 0, 1, 0x1F, 0x90}
	req, err := ReadRequest(bytes.NewReader(wire))
	if err != nil {
		t.Fatal(err)
	}
	if req.Cmd != 0x02 {
		t.Fatalf("cmd = %#02x", req.Cmd)
	}
	if req.Port != 8080 {
		t.Fatalf("port = %d", req.Port)
	}
}

func TestReplySuccessBytes(t *testing.T) {
	var buf bytes.Buffer
	bnd := &net.TCPAddr{IP: net.IPv4(10, 1, 2, 3), Port: 4242}
	if err := WriteReply(&buf, RepSuccess, ATYPIPv4, bnd); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x05, 0x00, 0x00, 0x01, 10, 1, 2, 3, 0x10, 0x92}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wire bytes % x, want % x", buf.Bytes(), want)
	}

	rep, err := ReadReply(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Rep != RepSuccess || rep.ATYP != ATYPIPv4 {
		t.Fatalf("rep=%#02x atyp=%#02x", rep.Rep, rep.ATYP)
	}
	if !rep.BndIP.Equal(bnd.IP) || rep.BndPort != 4242 {
		t.Fatalf("bnd %s:%d", rep.BndIP, rep.BndPort)
	}
}

// The reply layout stays 10 bytes with a 4-byte address field even when the
// echoed ATYP says domain name.
func TestReplyEchoesDomainATYP(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteReply(&buf, RepConnectionRefused, ATYPDomain, nil); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x05, 0x05, 0x00, 0x03, 0, 0, 0, 0, 0, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wire bytes % x, want % x", buf.Bytes(), want)
	}

	rep, err := ReadReply(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Rep != RepConnectionRefused || rep.ATYP != ATYPDomain {
		t.Fatalf("rep=%#02x atyp=%#02x", rep.Rep, rep.ATYP)
	}
	if !rep.BndIP.Equal(net.IPv4zero) || rep.BndPort != 0 {
		t.Fatalf("expected zeroed bnd, got %s:%d", rep.BndIP, rep.BndPort)
	}
}
