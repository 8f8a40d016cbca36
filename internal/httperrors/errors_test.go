// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestIsConnectionRefused(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "syscall via op error",
			err:  &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED},
			want: true,
		},
		{
			name: "wrapped op error",
			err:  fmt.Errorf("Post \"http://127.0.0.1:8765\": %w", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}),
			want: true,
		},
		{
			name: "message only",
			err:  errors.New("dial tcp 127.0.0.1:8765: connection refused"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("endpoint returned status 500"),
			want: false,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConnectionRefused(tt.err); got != tt.want {
				t.Errorf("IsConnectionRefused() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTimeout(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "net.Error timeout",
			err:  timeoutErr{},
			want: true,
		},
		{
			name: "deadline exceeded message",
			err:  errors.New("context deadline exceeded"),
			want: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDNSError(t *testing.T) {
	dnsErr := &net.DNSError{Err: "no such host", Name: "anki.invalid"}
	if !IsDNSError(fmt.Errorf("lookup failed: %w", dnsErr)) {
		t.Error("wrapped DNS error not detected")
	}
	if IsDNSError(errors.New("no such host")) {
		t.Error("plain message should not count as DNS error")
	}
}

func TestExplainNil(t *testing.T) {
	if err := Explain(nil, "listing decks"); err != nil {
		t.Errorf("Explain(nil) = %v, want nil", err)
	}
}

func TestExplainReturnsSingleLineError(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:8765: connection refused")
	err := Explain(cause, "listing decks")
	if err == nil {
		t.Fatal("Explain() = nil, want error")
	}
	if got, want := err.Error(), "failed while listing decks"; got != want {
		t.Errorf("Explain() error = %q, want %q", got, want)
	}
	if strings.Contains(err.Error(), "connection refused") {
		t.Error("the propagated error must not repeat the cause shown in the guidance block")
	}
}
