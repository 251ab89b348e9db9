package gcroot

import (
	"github.com/arthur-debert/gcroots/pkg/errors"
)

// Selection describes which roots a delete should act on
type Selection struct {
	// Locations names roots explicitly.
	Locations []string
	// Inactive selects every inactive generation.
	Inactive bool
	// Keep, when non-negative, selects inactive generations beyond the Keep
	// newest of each profile.
	Keep int
	// Standalone selects every standalone root.
	Standalone bool
	// Profile restricts generation selection to one profile.
	Profile string
}

// NewSelection returns a Selection with Keep disabled
func NewSelection() Selection {
	return Selection{Keep: -1}
}

// Empty is true when nothing would be selected
func (s Selection) Empty() bool {
	return len(s.Locations) == 0 && !s.Inactive && s.Keep < 0 && !s.Standalone
}

// Select resolves a selection against the inventory. Explicit locations that
// are not known roots are returned as failed results. Active generations and
// generations of unknown activity are never picked by Inactive or Keep, and
// Standalone never picks a profile's own link.
func Select(roots *Roots, sel Selection) ([]Root, []DeleteResult, error) {
	var (
		picked   []Root
		notFound []DeleteResult
		seen     = make(map[string]struct{})
	)
	pick := func(r Root) {
		if _, dup := seen[r.Location()]; dup {
			return
		}
		seen[r.Location()] = struct{}{}
		picked = append(picked, r)
	}

	for _, location := range sel.Locations {
		root, ok := roots.Find(location)
		if !ok {
			notFound = append(notFound, DeleteResult{
				Location: location,
				Status:   StatusFailed,
				Err:      errors.Newf(errors.ErrRootNotFound, "%s is not a known GC root", location),
			})
			continue
		}
		pick(root)
	}

	profiles := roots.Profiles()
	if sel.Profile != "" {
		p, ok := roots.Profile(sel.Profile)
		if !ok {
			return nil, nil, errors.Newf(errors.ErrInvalidInput, "%s is not a known profile", sel.Profile)
		}
		profiles = []*Profile{p}
	}

	keep := sel.Keep
	if sel.Inactive {
		keep = 0
	}
	if keep >= 0 {
		for _, p := range profiles {
			for i, g := range p.Newest() {
				if i >= keep && g.Active() == ActivityInactive {
					pick(g)
				}
			}
		}
	}

	// A listed profile link is standalone but removing it would orphan the
	// whole profile, so only an explicit location selects it.
	if sel.Standalone {
		for _, s := range roots.Standalone() {
			if _, isProfile := roots.Profile(s.Location()); isProfile {
				continue
			}
			pick(s)
		}
	}

	return picked, notFound, nil
}
