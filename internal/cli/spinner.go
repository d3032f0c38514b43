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

const spinnerInterval = 80 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner animates one status line on stderr while ingest loads its sources
// or render draws a subgraph. The line shows the current step and, once it
// has run for a second, its elapsed time. Finished steps are printed above
// it with [Spinner.Done].
type Spinner struct {
	w      io.Writer
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	exited chan struct{}
	once   sync.Once

	mu      sync.Mutex
	step    string
	since   time.Time
	drawn   int // display width of the line on screen
	running bool
}

// newSpinner creates a spinner for step. It stops drawing when ctx is
// cancelled.
func newSpinner(ctx context.Context, step string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		w:      os.Stderr,
		parent: ctx,
		ctx:    sctx,
		cancel: cancel,
		exited: make(chan struct{}),
		step:   step,
		since:  time.Now(),
	}
}

// Start begins drawing.
func (s *Spinner) Start() {
	s.mu.Lock()
	s.running = true
	s.since = time.Now()
	s.mu.Unlock()
	go s.animate()
}

func (s *Spinner) animate() {
	defer close(s.exited)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-s.ctx.Done():
			s.mu.Lock()
			s.clear()
			s.mu.Unlock()
			return
		case <-ticker.C:
			s.draw(spinnerFrames[frame%len(spinnerFrames)])
		}
	}
}

func (s *Spinner) draw(frame string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := styleIconSpinner.Render(frame) + " " + StyleDim.Render(s.step)
	if e := elapsed(time.Since(s.since)); e != "" {
		line += " " + StyleDim.Render(e)
	}
	s.clear()
	fmt.Fprint(s.w, "\r"+line)
	s.drawn = lipgloss.Width(line)
}

// clear blanks the drawn line. The caller holds mu.
func (s *Spinner) clear() {
	if s.drawn == 0 {
		return
	}
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.drawn))
	s.drawn = 0
}

// Step replaces the current step and restarts its timer.
func (s *Spinner) Step(step string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step = step
	s.since = time.Now()
}

// Done prints result and any detail lines for the finished step under the
// line lock, then keeps animating.
func (s *Spinner) Done(result string, details ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clear()
	if e := elapsed(time.Since(s.since)); e != "" {
		result += " " + StyleDim.Render("("+e+")")
	}
	printSuccess("%s", result)
	for _, d := range details {
		printDetail("%s", d)
	}
	s.since = time.Now()
}

// Stop stops drawing and clears the line. It may be called more than once,
// and before Start.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		s.mu.Lock()
		running := s.running
		s.mu.Unlock()
		if running {
			<-s.exited
		}
		s.mu.Lock()
		s.clear()
		s.mu.Unlock()
	})
}

// StopWithSuccess stops the spinner and prints message as a success.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints message as an error.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the context the spinner was created with is
// done. Stopping the spinner does not count.
func (s *Spinner) Cancelled() bool {
	return s.parent.Err() != nil
}

// elapsed formats a step duration for the status line. Steps under a
// second show nothing.
func elapsed(d time.Duration) string {
	if d < time.Second {
		return ""
	}
	return d.Round(100 * time.Millisecond).String()
}
