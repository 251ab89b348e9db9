package gcroot

import (
	"context"
	"slices"
	"strings"

	"github.com/arthur-debert/gcroots/pkg/filesystem"
	"github.com/arthur-debert/gcroots/pkg/listing"
	"github.com/arthur-debert/gcroots/pkg/logging"
)

// Roots is the inventory: profiles sorted by path and standalone roots
// sorted by location.
type Roots struct {
	profiles   []*Profile
	standalone []StandaloneRoot
}

// Profiles returns the profiles in path order
func (r *Roots) Profiles() []*Profile {
	return slices.Clone(r.profiles)
}

// Standalone returns the roots that belong to no profile, in location order
func (r *Roots) Standalone() []StandaloneRoot {
	return slices.Clone(r.standalone)
}

// Profile finds a profile by its base path
func (r *Roots) Profile(path string) (*Profile, bool) {
	i, found := slices.BinarySearchFunc(r.profiles, path, func(p *Profile, path string) int {
		return strings.Compare(p.path, path)
	})
	if !found {
		return nil, false
	}
	return r.profiles[i], true
}

// Len counts every root in the inventory
func (r *Roots) Len() int {
	n := len(r.standalone)
	for _, p := range r.profiles {
		n += p.Len()
	}
	return n
}

// All returns every root: profile generations first, then standalone roots
func (r *Roots) All() []Root {
	all := make([]Root, 0, r.Len())
	for _, p := range r.profiles {
		for _, g := range p.Generations() {
			all = append(all, g)
		}
	}
	for _, s := range r.standalone {
		all = append(all, s)
	}
	return all
}

// Find looks a root up by its location
func (r *Roots) Find(location string) (Root, bool) {
	if base, ok := ProfilePath(location); ok {
		if p, ok := r.Profile(base); ok {
			_, n, _ := ParseGenerationName(location)
			if g, ok := p.Generation(n); ok && g.location == location {
				return g, true
			}
		}
	}
	for _, s := range r.standalone {
		if s.location == location {
			return s, true
		}
	}
	return nil, false
}

// Group partitions entries into profiles and standalone roots.
//
// A profile exists only if its base symlink exists, which can only be known
// after every entry has been classified, so grouping is done in two passes.
func Group(fsys filesystem.FS, entries []Entry) (*Roots, error) {
	logger := logging.GetLogger("gcroot.group")

	candidates := make(map[string]struct{})
	for _, entry := range entries {
		if base, ok := ProfilePath(entry.Location); ok {
			candidates[base] = struct{}{}
		}
	}

	profiles := make(map[string]*Profile, len(candidates))
	for base := range candidates {
		if !filesystem.IsSymlink(fsys, base) {
			logger.Debug().Str("profile", base).Msg("Discarding profile candidate without symlink")
			continue
		}
		active, known, err := ResolveActiveGeneration(fsys, base)
		if err != nil {
			return nil, err
		}
		if !known {
			logger.Debug().Str("profile", base).Msg("Active generation unknown")
		}
		profiles[base] = newProfile(base, active, known)
	}

	var standalone []StandaloneRoot
	for _, entry := range entries {
		if base, ok := ProfilePath(entry.Location); ok {
			if p, ok := profiles[base]; ok {
				_, n, _ := ParseGenerationName(entry.Location)
				p.add(entry, n)
				continue
			}
		}
		standalone = append(standalone, NewStandaloneRoot(entry.Location, entry.Target))
	}

	slices.SortStableFunc(standalone, func(a, b StandaloneRoot) int {
		if c := strings.Compare(a.location, b.location); c != 0 {
			return c
		}
		return strings.Compare(a.target, b.target)
	})

	sorted := make([]*Profile, 0, len(profiles))
	for _, p := range profiles {
		sorted = append(sorted, p)
	}
	slices.SortFunc(sorted, func(a, b *Profile) int {
		return strings.Compare(a.path, b.path)
	})

	logger.Debug().
		Int("entries", len(entries)).
		Int("profiles", len(sorted)).
		Int("standalone", len(standalone)).
		Msg("Grouped roots")

	return &Roots{profiles: sorted, standalone: standalone}, nil
}

// Inventory lists the roots from source and groups them
func Inventory(ctx context.Context, source listing.Source, fsys filesystem.FS) (*Roots, error) {
	logger := logging.GetLogger("gcroot.inventory")
	defer logging.LogOperationStart(logger, "inventory")()

	data, err := source.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := ParseListing(data)
	if err != nil {
		return nil, err
	}
	return Group(fsys, entries)
}
