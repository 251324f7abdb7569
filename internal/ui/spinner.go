package ui

import (
	"fmt"
	"os"
	"time"
)

var frames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner displays an animated progress indicator on stderr while a fetch
// is in flight.
type Spinner struct {
	msg  string
	done chan struct{}
}

// NewSpinner creates a new Spinner with a fixed message (not yet running).
func NewSpinner(msg string) *Spinner {
	return &Spinner{msg: msg}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	s.done = make(chan struct{})
	go s.run()
}

// Stop halts the spinner and clears the line.
func (s *Spinner) Stop() {
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
	fmt.Fprintf(os.Stderr, "\r\033[K")
}

func (s *Spinner) run() {
	tick := time.NewTicker(80 * time.Millisecond)
	defer tick.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.done:
			return
		case <-tick.C:
			fmt.Fprintf(os.Stderr, "\r\033[K%c %s", frames[i%len(frames)], s.msg)
		}
	}
}
