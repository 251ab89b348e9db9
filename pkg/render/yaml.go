package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/gcroots/pkg/gcroot"
)

// YAMLRenderer writes YAML documents
type YAMLRenderer struct {
	w    io.Writer
	opts Options
}

// NewYAML creates a new YAML renderer
func NewYAML(w io.Writer, opts Options) *YAMLRenderer {
	return &YAMLRenderer{w: w, opts: opts}
}

func (r *YAMLRenderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (r *YAMLRenderer) RenderInventory(roots *gcroot.Roots) error {
	return r.encode(NewInventoryDocument(roots, r.opts.Policy))
}

func (r *YAMLRenderer) RenderDeleteReport(report *gcroot.DeleteReport) error {
	return r.encode(NewDeleteDocument(report))
}
