package render

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/gcroots/pkg/gcroot"
)

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
	opts    Options
}

// NewJSON creates a new JSON renderer
func NewJSON(w io.Writer, opts Options) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder, opts: opts}
}

func (r *JSONRenderer) RenderInventory(roots *gcroot.Roots) error {
	return r.encoder.Encode(NewInventoryDocument(roots, r.opts.Policy))
}

func (r *JSONRenderer) RenderDeleteReport(report *gcroot.DeleteReport) error {
	return r.encoder.Encode(NewDeleteDocument(report))
}
