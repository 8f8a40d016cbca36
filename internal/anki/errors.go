package anki

import "fmt"

// TransportError reports that the AnkiConnect endpoint could not be reached
// or did not return a parseable envelope: connection refused, timeout, DNS
// failure, non-2xx status, or a malformed response body. It usually means
// Anki is not running or the add-on is not installed.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach AnkiConnect: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RemoteError carries an error message produced by AnkiConnect itself: the
// endpoint was reachable and the envelope parsed, but the add-on rejected
// the request (unknown action, bad query, missing note). The message is
// passed through verbatim.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return "AnkiConnect API error: " + e.Message
}
