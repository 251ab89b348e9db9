package gcroot

import (
	"maps"
	"slices"
)

// Profile is a stable symlink together with the generations it can point to
type Profile struct {
	path       string
	active     uint64
	known      bool
	generation map[uint64]GenerationRoot
}

func newProfile(path string, active uint64, known bool) *Profile {
	return &Profile{
		path:       path,
		active:     active,
		known:      known,
		generation: make(map[uint64]GenerationRoot),
	}
}

// Path is the profile's base symlink, e.g. /nix/var/nix/profiles/system
func (p *Profile) Path() string {
	return p.path
}

// ActiveGeneration returns the generation the profile points to. known is
// false when it could not be determined, which is not the same as the profile
// having no active generation.
func (p *Profile) ActiveGeneration() (generation uint64, known bool) {
	return p.active, p.known
}

// Len returns the number of generations
func (p *Profile) Len() int {
	return len(p.generation)
}

// Generation looks up a single generation by number
func (p *Profile) Generation(n uint64) (GenerationRoot, bool) {
	g, ok := p.generation[n]
	return g, ok
}

// Generations returns the generations in ascending order
func (p *Profile) Generations() []GenerationRoot {
	keys := slices.Sorted(maps.Keys(p.generation))
	out := make([]GenerationRoot, 0, len(keys))
	for _, k := range keys {
		out = append(out, p.generation[k])
	}
	return out
}

// Newest returns the generations in descending order, the way they are displayed
func (p *Profile) Newest() []GenerationRoot {
	out := p.Generations()
	slices.Reverse(out)
	return out
}

// MaxGeneration returns the highest generation number, or 0 for an empty profile
func (p *Profile) MaxGeneration() uint64 {
	var highest uint64
	for k := range p.generation {
		highest = max(highest, k)
	}
	return highest
}

func (p *Profile) activity(n uint64) Activity {
	switch {
	case !p.known:
		return ActivityUnknown
	case p.active == n:
		return ActivityActive
	default:
		return ActivityInactive
	}
}

// add inserts a generation. A repeated number replaces the earlier entry.
func (p *Profile) add(entry Entry, n uint64) {
	p.generation[n] = GenerationRoot{
		location:   entry.Location,
		target:     entry.Target,
		generation: n,
		active:     p.activity(n),
	}
}
