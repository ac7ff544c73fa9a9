package terminal

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// SpinnerFrames is the default animation.
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// StartSpinner starts a simple inline spinner animation on a single line.
// It displays rotating animation frames followed by the provided text, updating
// the same line in the terminal. The spinner runs in a separate goroutine and
// can be stopped by calling the returned function, which clears the line and
// waits for the goroutine to exit. Calling stop more than once is safe.
//
// Lines longer than maxWidth (when positive) are truncated so they never wrap.
func StartSpinner(w io.Writer, text string, frames []string, interval time.Duration, maxWidth int) func() {
	if len(frames) == 0 {
		frames = SpinnerFrames
	}
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		render := func() string {
			line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
			if r := []rune(line); maxWidth > 0 && len(r) > maxWidth {
				line = string(r[:maxWidth])
			}
			return line
		}
		for {
			select {
			case <-stop:
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len([]rune(render())), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s", render())
				i++
			}
		}
	}()
	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}
}
