// Copyright (c) 2025 anki-llm
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors provides user-friendly handling of AnkiConnect
// transport failures. It detects common failure modes (connection refused,
// timeout, DNS) and prints troubleshooting guidance; the most frequent one
// by far is "Anki is not running".
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// Explain displays a user-friendly message for a transport failure and
// returns a short error for the caller to propagate. context describes
// the attempted operation ("listing decks", "fetching notes"). The cause
// is part of the guidance block, so the returned error stays to one line
// and the top-level printer does not repeat it.
func Explain(err error, context string) error {
	if err == nil {
		return nil
	}
	displayErrorMessage(err, context)
	return fmt.Errorf("failed while %s", context)
}

func displayErrorMessage(err error, context string) {
	switch {
	case IsConnectionRefused(err):
		showNotRunningError(context)
	case IsTimeout(err):
		showTimeoutError(context)
	case IsDNSError(err):
		showDNSError(context)
	default:
		showGenericError(context, err.Error())
	}
}

// IsTimeout reports whether the error is a timeout.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// IsDNSError reports whether the error is a DNS resolution failure.
func IsDNSError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// IsConnectionRefused reports whether the error is a refused connection,
// which for a loopback endpoint means nothing is listening.
func IsConnectionRefused(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// showNotRunningError displays guidance for a refused loopback connection.
func showNotRunningError(context string) {
	pterm.Printf("✗ Could not connect to AnkiConnect while %s\n", context)
	pterm.Println()
	pterm.Println("Make sure:")
	pterm.Println("  1. Anki Desktop is running")
	pterm.Println("  2. AnkiConnect add-on is installed (code: 2055492159)")
	pterm.Println()
}

// showTimeoutError displays guidance for a timed-out request.
func showTimeoutError(context string) {
	pterm.Printf("✗ AnkiConnect took too long to respond while %s\n", context)
	pterm.Println()
	pterm.Println("Anki may be busy (syncing, checking the database) or showing")
	pterm.Println("a modal dialog that blocks the add-on. Close any open dialog")
	pterm.Println("and try again.")
	pterm.Println()
}

// showDNSError displays guidance for an unresolvable endpoint host.
func showDNSError(context string) {
	pterm.Printf("✗ Cannot resolve the AnkiConnect host while %s\n", context)
	pterm.Println()
	pterm.Println("Check the endpoint setting in your config file; the default")
	pterm.Println("is http://127.0.0.1:8765.")
	pterm.Println()
}

// showGenericError displays a generic message for unrecognized failures.
func showGenericError(context string, errDetails string) {
	pterm.Printf("✗ Error while %s\n", context)
	pterm.Println()
	pterm.Println("Make sure:")
	pterm.Println("  1. Anki Desktop is running")
	pterm.Println("  2. AnkiConnect add-on is installed (code: 2055492159)")
	pterm.Println()

	if errDetails != "" {
		shortErr := errDetails
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", shortErr)
		pterm.Println()
	}
}
