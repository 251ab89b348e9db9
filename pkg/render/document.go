package render

import (
	"github.com/arthur-debert/gcroots/pkg/gcroot"
)

// InventoryDocument is the serializable form of an inventory
type InventoryDocument struct {
	Profiles   []ProfileDocument `json:"profiles" yaml:"profiles"`
	Standalone []RootDocument    `json:"standalone" yaml:"standalone"`
}

// ProfileDocument describes one profile. ActiveGeneration is null when unknown.
type ProfileDocument struct {
	Path             string               `json:"path" yaml:"path"`
	ActiveGeneration *uint64              `json:"active_generation" yaml:"active_generation"`
	Generations      []GenerationDocument `json:"generations" yaml:"generations"`
}

type GenerationDocument struct {
	Generation uint64 `json:"generation" yaml:"generation"`
	Location   string `json:"location" yaml:"location"`
	Target     string `json:"target" yaml:"target"`
	Active     string `json:"active" yaml:"active"`
	Deletable  *bool  `json:"deletable,omitempty" yaml:"deletable,omitempty"`
}

type RootDocument struct {
	Location  string `json:"location" yaml:"location"`
	Target    string `json:"target" yaml:"target"`
	Deletable *bool  `json:"deletable,omitempty" yaml:"deletable,omitempty"`
}

// DeleteDocument is the serializable form of a deletion report
type DeleteDocument struct {
	DryRun  bool                   `json:"dry_run" yaml:"dry_run"`
	Results []DeleteResultDocument `json:"results" yaml:"results"`
	Summary map[string]int         `json:"summary" yaml:"summary"`
}

type DeleteResultDocument struct {
	Location string `json:"location" yaml:"location"`
	Status   string `json:"status" yaml:"status"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewInventoryDocument converts an inventory. Deletable flags are filled in
// only when a policy is given.
func NewInventoryDocument(roots *gcroot.Roots, policy *gcroot.Policy) InventoryDocument {
	doc := InventoryDocument{
		Profiles:   []ProfileDocument{},
		Standalone: []RootDocument{},
	}

	for _, p := range roots.Profiles() {
		pd := ProfileDocument{Path: p.Path(), Generations: []GenerationDocument{}}
		if active, known := p.ActiveGeneration(); known {
			pd.ActiveGeneration = &active
		}
		for _, g := range p.Newest() {
			pd.Generations = append(pd.Generations, GenerationDocument{
				Generation: g.Generation(),
				Location:   g.Location(),
				Target:     g.Target(),
				Active:     g.Active().String(),
				Deletable:  deletable(g, policy),
			})
		}
		doc.Profiles = append(doc.Profiles, pd)
	}

	for _, s := range roots.Standalone() {
		doc.Standalone = append(doc.Standalone, RootDocument{
			Location:  s.Location(),
			Target:    s.Target(),
			Deletable: deletable(s, policy),
		})
	}

	return doc
}

func deletable(root gcroot.Root, policy *gcroot.Policy) *bool {
	if policy == nil {
		return nil
	}
	ok := root.Deletable(policy)
	return &ok
}

// NewDeleteDocument converts a deletion report
func NewDeleteDocument(report *gcroot.DeleteReport) DeleteDocument {
	doc := DeleteDocument{
		DryRun:  report.DryRun,
		Results: []DeleteResultDocument{},
		Summary: map[string]int{},
	}
	for _, status := range []gcroot.DeleteStatus{
		gcroot.StatusDeleted, gcroot.StatusWouldDelete, gcroot.StatusSkipped, gcroot.StatusFailed,
	} {
		doc.Summary[string(status)] = report.Count(status)
	}
	for _, res := range report.Results {
		rd := DeleteResultDocument{Location: res.Location, Status: string(res.Status)}
		if res.Err != nil {
			rd.Error = res.Err.Error()
		}
		doc.Results = append(doc.Results, rd)
	}
	return doc
}
