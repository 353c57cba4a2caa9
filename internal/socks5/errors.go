package socks5

import "fmt"

// ProtocolError reports malformed or version-mismatched wire data. Field
// names the offending wire field, Reason says what was wrong with it. It is
// always fatal to the session that hit it.
type ProtocolError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("socks5: %s: %s: %s", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("socks5: %s: %s", e.Field, e.Reason)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}

func protocolErrf(field string, format string, args ...any) *ProtocolError {
	return &ProtocolError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func truncatedErr(field string, err error) *ProtocolError {
	return &ProtocolError{Field: field, Reason: "truncated", Err: err}
}
