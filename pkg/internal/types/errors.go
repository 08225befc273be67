package types

import "fmt"

// AuthError reports an unusable credential configuration at client construction time.
// It is never retried; the client is not built.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("wfirma auth: %s", e.Message)
}

// TransportError reports an HTTP-level failure that produced no response payload,
// or a request that could not be executed at all (StatusCode 0).
type TransportError struct {
	StatusCode int
	Err        error
	Message    string
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("wfirma transport %d: %s, %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("wfirma transport %d: %s", e.StatusCode, e.Message)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that was not well-formed XML. Raw keeps the
// original bytes for diagnostics.
type ParseError struct {
	StatusCode int
	Err        error
	Raw        []byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wfirma parse %d: failed to parse XML, %v", e.StatusCode, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// APIError reports a response that parsed cleanly but carries a failing embedded
// status code. The transport status is typically 200; Code is the vendor's verdict.
// Payload holds the full decoded document for diagnostics.
type APIError struct {
	StatusCode int
	Code       string
	Payload    any
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wfirma api %d: status code %s", e.StatusCode, e.Code)
}
