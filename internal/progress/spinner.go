package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps the enumeration spinner. All methods are no-ops when the
// terminal is not a TTY, so callers never branch on capability.
type Spinner struct {
	inner *spinner.Spinner
}

// NewSpinner creates a spinner with the given status message. Spinner
// character set depends on Unicode support: braille dots on capable
// terminals, the portable |/-\ set otherwise.
func NewSpinner(message string, caps TerminalCapabilities) *Spinner {
	if !caps.IsTTY {
		return &Spinner{}
	}

	charSet := 9 // ASCII: | / - \
	if caps.SupportsUnicode {
		charSet = 14 // Unicode dots
	}

	s := spinner.New(spinner.CharSets[charSet], 100*time.Millisecond)
	s.Suffix = " " + message
	return &Spinner{inner: s}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	if s.inner != nil {
		s.inner.Start()
	}
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	if s.inner != nil {
		s.inner.Stop()
	}
}
