package gcroots

import (
	"os"
	"strings"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutIsTerminal decides both help-template bolding and the topic renderer style
func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// formatBold makes s bold with pterm when stdout is a terminal
func formatBold(s string) string {
	// Piped help (man pages, completion scripts, tests) stays free of escapes
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper is used for section headings in the usage template
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper combines both, for the group titles
func formatBoldUpper(s string) string {
	return formatBold(formatUpper(s))
}

// initTemplateFormatting registers the functions msgs/usage-template.txt calls.
// Must run before the usage template is parsed.
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
