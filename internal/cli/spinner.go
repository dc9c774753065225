package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinnerOut receives the animation.
var spinnerOut io.Writer = os.Stderr

// Spinner animates a status line while a remote call runs. Cancelling
// the context it was created with ends the animation early.
type Spinner struct {
	message string
	ctx     context.Context
	cancel  context.CancelFunc

	running  bool
	exited   chan struct{}
	stopOnce sync.Once
}

func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		ctx:     ctx,
		cancel:  cancel,
		exited:  make(chan struct{}),
	}
}

// Start draws frames until Stop is called or the context ends.
func (s *Spinner) Start() {
	s.running = true
	go s.animate()
}

func (s *Spinner) animate() {
	defer close(s.exited)
	defer fmt.Fprintf(spinnerOut, "\r%s\r", strings.Repeat(" ", lipgloss.Width(s.message)+4))

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()
	for n := 0; ; n++ {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			frame := spinnerFrames[n%len(spinnerFrames)]
			fmt.Fprintf(spinnerOut, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
		}
	}
}

// Stop ends the animation and waits until the line is cleared.
// Calling it more than once is harmless.
func (s *Spinner) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		if s.running {
			<-s.exited
		}
	})
}

// StopWithError stops the spinner and prints message as an error.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the animation has ended, through Stop or the
// parent context.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
