// Package style holds the lipgloss styles used to render inventories and
// deletion reports, and decides whether color is used at all.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var (
	// ProfileStyle renders a profile's base path
	ProfileStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// ActiveStyle renders the active generation line
	ActiveStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// GenerationStyle renders inactive generation numbers
	GenerationStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// PathStyle renders root locations
	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	// TargetStyle renders store paths
	TargetStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
)

// Color modes, matching config.Display.Color
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// UseColor decides whether output to w should be styled
func UseColor(mode string, w io.Writer) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Setup configures lipgloss's color profile for the chosen mode
func Setup(mode string, w io.Writer) {
	switch {
	case !UseColor(mode, w):
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == ModeAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	default:
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	}
}
