// Package render turns an inventory or a deletion report into output.
package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/arthur-debert/gcroots/pkg/gcroot"
)

// Format selects a renderer. It implements pflag.Value so it can be bound
// directly to a --format flag.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the accepted format names
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

var _ pflag.Value = (*Format)(nil)

func (f *Format) String() string { return string(*f) }

func (f *Format) Set(value string) error {
	for _, known := range Formats {
		if strings.EqualFold(value, string(known)) {
			*f = known
			return nil
		}
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want one of %s)", value, formatNames())
}

func (f *Format) Type() string { return "format" }

func formatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Options tune what renderers include
type Options struct {
	// Styled enables lipgloss styling in text output.
	Styled bool
	// Policy, when set, is used to report which roots are deletable.
	Policy *gcroot.Policy
}

// Renderer writes inventories and deletion reports
type Renderer interface {
	RenderInventory(roots *gcroot.Roots) error
	RenderDeleteReport(report *gcroot.DeleteReport) error
}

// New returns the renderer for format writing to w
func New(format Format, w io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewText(w, opts), nil
	case FormatJSON:
		return NewJSON(w, opts), nil
	case FormatYAML:
		return NewYAML(w, opts), nil
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", string(format))
}

// digits returns the printed width of n
func digits(n uint64) int {
	return len(strconv.FormatUint(n, 10))
}
