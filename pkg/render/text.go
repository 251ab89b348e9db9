package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/gcroots/pkg/gcroot"
	"github.com/arthur-debert/gcroots/pkg/style"
)

const (
	activeMarker   = "> "
	inactiveMarker = "  "
)

// TextRenderer writes the human readable layout:
//
//	/nix/var/nix/profiles/system
//	> 12 -> /nix/store/...-nixos-system
//	  11 -> /nix/store/...-nixos-system
//	   9 -> /nix/store/...-nixos-system
//
//	/home/u/project/result -> /nix/store/...
//
// Generations are listed newest first, right-aligned to the widest number.
type TextRenderer struct {
	w    io.Writer
	opts Options
}

// NewText creates a text renderer
func NewText(w io.Writer, opts Options) *TextRenderer {
	return &TextRenderer{w: w, opts: opts}
}

func (r *TextRenderer) style(s string, st lipgloss.Style) string {
	if !r.opts.Styled {
		return s
	}
	return st.Render(s)
}

func (r *TextRenderer) RenderInventory(roots *gcroot.Roots) error {
	var b strings.Builder

	profiles := roots.Profiles()
	for i, p := range profiles {
		if i > 0 {
			b.WriteString("\n")
		}
		r.writeProfile(&b, p)
	}

	standalone := roots.Standalone()
	if len(profiles) > 0 && len(standalone) > 0 {
		b.WriteString("\n")
	}
	for _, s := range standalone {
		b.WriteString(r.style(s.Location(), style.PathStyle))
		b.WriteString(gcroot.Separator)
		b.WriteString(r.style(s.Target(), style.TargetStyle))
		r.writeDeletable(&b, s)
		b.WriteString("\n")
	}

	if roots.Len() == 0 && r.opts.Styled {
		b.WriteString(style.MutedStyle.Render("No GC roots found.") + "\n")
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) writeProfile(b *strings.Builder, p *gcroot.Profile) {
	b.WriteString(r.style(p.Path(), style.ProfileStyle))
	if _, known := p.ActiveGeneration(); !known && r.opts.Styled {
		b.WriteString(" " + style.MutedStyle.Render("(active generation unknown)"))
	}
	b.WriteString("\n")

	width := digits(p.MaxGeneration())
	for _, g := range p.Newest() {
		number := fmt.Sprintf("%*d", width, g.Generation())
		if g.Active() == gcroot.ActivityActive {
			b.WriteString(r.style(activeMarker+number, style.ActiveStyle))
		} else {
			b.WriteString(inactiveMarker + r.style(number, style.GenerationStyle))
		}
		b.WriteString(gcroot.Separator)
		b.WriteString(r.style(g.Target(), style.TargetStyle))
		r.writeDeletable(b, g)
		b.WriteString("\n")
	}
}

func (r *TextRenderer) writeDeletable(b *strings.Builder, root gcroot.Root) {
	if r.opts.Policy == nil || !root.Deletable(r.opts.Policy) {
		return
	}
	b.WriteString(" " + r.style("(deletable)", style.WarningStyle))
}

func (r *TextRenderer) RenderDeleteReport(report *gcroot.DeleteReport) error {
	var b strings.Builder

	for _, res := range report.Results {
		switch res.Status {
		case gcroot.StatusDeleted:
			b.WriteString(r.style("deleted", style.SuccessStyle) + "      " + res.Location)
		case gcroot.StatusWouldDelete:
			b.WriteString(r.style("would delete", style.WarningStyle) + " " + res.Location)
		case gcroot.StatusSkipped:
			b.WriteString(r.style("skipped", style.MutedStyle) + "      " + res.Location)
		case gcroot.StatusFailed:
			b.WriteString(r.style("failed", style.ErrorStyle) + "       " + res.Location)
		}
		if res.Err != nil && res.Status != gcroot.StatusSkipped {
			fmt.Fprintf(&b, ": %v", res.Err)
		}
		b.WriteString("\n")
	}

	if len(report.Results) > 0 {
		b.WriteString("\n")
	}
	b.WriteString(summary(report))
	b.WriteString("\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func summary(report *gcroot.DeleteReport) string {
	if report.DryRun {
		return fmt.Sprintf("%d would be deleted, %d skipped, %d failed (dry run)",
			report.Count(gcroot.StatusWouldDelete),
			report.Count(gcroot.StatusSkipped),
			report.Count(gcroot.StatusFailed))
	}
	return fmt.Sprintf("%d deleted, %d skipped, %d failed",
		report.Count(gcroot.StatusDeleted),
		report.Count(gcroot.StatusSkipped),
		report.Count(gcroot.StatusFailed))
}
