// Package statusbar renders the one-line summary under the chat list.
package statusbar

import (
	"fmt"
	"path/filepath"
	"strings"

	"chatentry/pkg/ui/styles"

	"github.com/charmbracelet/x/ansi"
)

// StatusBarView shows the transcript source on the left and list state on
// the right.
type StatusBarView struct {
	source  string
	locale  string
	touch   bool
	count   int
	message string
	width   int
}

// NewStatusBarView creates a new status bar view
func NewStatusBarView() *StatusBarView {
	return &StatusBarView{width: 80}
}

// SetSource sets the transcript path; only its base name is shown.
func (s *StatusBarView) SetSource(path string) {
	s.source = filepath.Base(strings.TrimSpace(path))
}

// SetLocale sets the resolved locale label.
func (s *StatusBarView) SetLocale(locale string) {
	s.locale = locale
}

// SetTouch reflects the header visibility mode.
func (s *StatusBarView) SetTouch(touch bool) {
	s.touch = touch
}

// SetCount sets the number of messages.
func (s *StatusBarView) SetCount(n int) {
	s.count = n
}

// SetMessage sets a temporary message that replaces the source.
func (s *StatusBarView) SetMessage(msg string) {
	s.message = msg
}

// SetWidth updates the width for rendering
func (s *StatusBarView) SetWidth(width int) {
	s.width = width
}

// Render returns the styled status bar string
func (s *StatusBarView) Render() string {
	left := "[chatentry] " + s.source
	if s.message != "" {
		left = "[chatentry] " + s.message
	}

	mode := "hover"
	if s.touch {
		mode = "touch"
	}
	locale := s.locale
	if locale == "" {
		locale = "default"
	}
	right := fmt.Sprintf("%s | %s | %d messages", locale, mode, s.count)

	// Padding(0, 1) takes two columns.
	inner := max(s.width-2, 1)
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	var content string
	if gap >= 1 {
		content = left + strings.Repeat(" ", gap) + right
	} else {
		content = ansi.Truncate(left+" "+right, inner, "...")
		if pad := inner - ansi.StringWidth(content); pad > 0 {
			content += strings.Repeat(" ", pad)
		}
	}

	return styles.StatusBarStyle.Render(content)
}
