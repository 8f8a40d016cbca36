package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"atomicgo.dev/cursor"
)

var spinnerFrames = []string{"|", "/", "-", "\\"}

// runWithSpinner shows an inline spinner on stderr while fn executes. The
// terminal cursor is hidden for the duration so the animation does not
// flicker, and the line is cleared before returning.
func runWithSpinner(text string, fn func() error) error {
	cursor.Hide()
	defer cursor.Show()
	stop := startInlineSpinner(os.Stderr, text, spinnerFrames, 120*time.Millisecond)
	defer stop()
	return fn()
}

// startInlineSpinner starts a simple inline spinner animation on a single
// line, updating in place at the given interval. The returned function
// stops the spinner and clears the line.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// primitive protection against very long lines
				if len(line) > 2000 {
					line = line[:2000]
				}
				fmt.Fprintf(w, "\r%s", line)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}
