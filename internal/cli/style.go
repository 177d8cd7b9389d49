package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Intent names the visual role of a piece of output. Presentation code
// decides intents; the styler decides what they look like.
type Intent int

const (
	IntentID Intent = iota
	IntentName
	IntentDone
	IntentPending
	IntentTimestamp
	IntentHeading
	IntentHelp
	IntentPrompt
)

// Styler decorates text for display without altering its content
type Styler interface {
	Decorate(text string, intent Intent) string
}

// colorStyler renders intents with lipgloss styles
type colorStyler struct {
	styles map[Intent]lipgloss.Style
}

// NewColorStyler creates a styler with the default color scheme
func NewColorStyler() Styler {
	return &colorStyler{
		styles: map[Intent]lipgloss.Style{
			IntentID:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			IntentName:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
			IntentDone:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			IntentPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
			IntentTimestamp: lipgloss.NewStyle().Faint(true),
			IntentHeading:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
			IntentHelp:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			IntentPrompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		},
	}
}

func (s *colorStyler) Decorate(text string, intent Intent) string {
	style, ok := s.styles[intent]
	if !ok {
		return text
	}
	return style.Render(text)
}

// plainStyler passes text through untouched. Used for non-terminal
// output and in tests.
type plainStyler struct{}

// NewPlainStyler creates a styler that performs no decoration
func NewPlainStyler() Styler {
	return plainStyler{}
}

func (plainStyler) Decorate(text string, _ Intent) string {
	return text
}

// NewStyler picks a styler for the given color mode ("auto", "always",
// "never"). In auto mode color is used only on a real terminal, and the
// NO_COLOR convention is honored.
func NewStyler(mode string, stdout *os.File) Styler {
	switch mode {
	case "always":
		return NewColorStyler()
	case "never":
		return NewPlainStyler()
	}

	if os.Getenv("NO_COLOR") != "" {
		return NewPlainStyler()
	}
	if stdout == nil || !isatty.IsTerminal(stdout.Fd()) && !isatty.IsCygwinTerminal(stdout.Fd()) {
		return NewPlainStyler()
	}
	return NewColorStyler()
}
