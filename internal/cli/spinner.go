package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// spinner animates a one-line status on w while a slow stage runs. Commands
// pass cmd.ErrOrStderr() so artifacts written to stdout stay clean.
type spinner struct {
	w       io.Writer
	message string
	start   time.Time

	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	width int // runes last drawn, for clearing
}

// startSpinner draws message on w until stop or fail, or until parent ends.
func startSpinner(parent context.Context, w io.Writer, message string) *spinner {
	ctx, cancel := context.WithCancel(parent)
	s := &spinner{
		w:       w,
		message: message,
		start:   time.Now(),
		parent:  parent,
		ctx:     ctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *spinner) run() {
	defer close(s.stopped)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.draw(spinnerLine(i, s.message, time.Since(s.start)))
		}
	}
}

// spinnerLine renders frame i, e.g. "⠹ Rasterizing png (1.2s)".
func spinnerLine(i int, message string, elapsed time.Duration) string {
	frame := spinnerFrames[i%len(spinnerFrames)]
	return fmt.Sprintf("%s %s %s",
		styleIconSpinner.Render(frame),
		StyleDim.Render(message),
		StyleDim.Render("("+elapsed.Round(100*time.Millisecond).String()+")"))
}

func (s *spinner) draw(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprint(s.w, "\r"+line)
	s.width = max(s.width, len([]rune(line)))
}

func (s *spinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		s.width = 0
	}
}

// stop ends the animation, clears the line and returns the elapsed time.
// Repeated calls are harmless.
func (s *spinner) stop() time.Duration {
	s.once.Do(func() {
		s.cancel()
		<-s.stopped
		s.clear()
	})
	return time.Since(s.start)
}

// fail stops the spinner and leaves an error line in its place.
func (s *spinner) fail(message string) {
	s.stop()
	fmt.Fprintln(s.w, styleIconError.Render(iconError)+" "+message)
}

// interrupted reports whether the caller's context ended, as on Ctrl-C.
func (s *spinner) interrupted() bool {
	return s.parent.Err() != nil
}
