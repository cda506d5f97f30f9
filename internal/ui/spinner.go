package ui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner provides an animated loading indicator on stdout.
type Spinner struct {
	message  string
	running  bool
	stopCh   chan struct{}
	done     chan struct{}
	mu       sync.Mutex
	style    lipgloss.Style
	msgStyle lipgloss.Style
	interval time.Duration
	colored  bool
}

func NewSpinner(colored bool) *Spinner {
	return &Spinner{
		style:    lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		msgStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		interval: 80 * time.Millisecond,
		colored:  colored,
	}
}

// Start begins the spinner animation with a message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	if s.running {
		s.message = message
		s.mu.Unlock()
		return
	}

	s.message = message
	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.animate()
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	s.mu.Unlock()

	<-s.done
	fmt.Print("\r\033[K")
}

func (s *Spinner) animate() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.mu.Lock()
			msg := s.message
			s.mu.Unlock()

			s.render(frame, msg)
			frame = (frame + 1) % len(spinnerFrames)
		}
	}
}

func (s *Spinner) render(frame int, message string) {
	spinChar := spinnerFrames[frame]

	var output string
	if s.colored {
		output = fmt.Sprintf("\r\033[K%s %s",
			s.style.Render(spinChar),
			s.msgStyle.Render(message))
	} else {
		output = fmt.Sprintf("\r\033[K%s %s", spinChar, message)
	}

	fmt.Print(output)
	os.Stdout.Sync()
}
