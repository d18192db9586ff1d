package utils

import (
	"fmt"
	"io"
	"time"
)

// Spinner shows a process indicator while a long running task is executing.
type Spinner struct {
	w        io.Writer
	stopChan chan struct{}
	done     chan struct{}
}

// NewSpinner instantiates a new Spinner writing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{w: w}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{}, 1)
	s.done = make(chan struct{})

	go func() {
		defer close(s.done)
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(s.w, "\r")
					return
				default:
					fmt.Fprintf(s.w, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and waits until the last frame is cleared.
func (s *Spinner) Stop() {
	if s.stopChan == nil {
		return
	}
	s.stopChan <- struct{}{}
	<-s.done
	s.stopChan = nil
}
