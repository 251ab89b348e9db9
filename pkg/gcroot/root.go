package gcroot

// Root is a garbage collection root: a symlink at Location pointing at the
// store path Target. It is either a StandaloneRoot or a GenerationRoot.
type Root interface {
	Location() string
	Target() string
	// Deletable reports whether the policy allows unlinking this root.
	Deletable(policy *Policy) bool
	// Delete unlinks the root after re-checking Deletable. The target is
	// never touched.
	Delete(policy *Policy) error
	String() string
}

// Activity tells whether a generation is the one its profile points at
type Activity int

const (
	// ActivityUnknown means the profile's active generation could not be read
	ActivityUnknown Activity = iota
	ActivityInactive
	ActivityActive
)

func (a Activity) String() string {
	switch a {
	case ActivityActive:
		return "active"
	case ActivityInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// StandaloneRoot is a root that belongs to no profile
type StandaloneRoot struct {
	location string
	target   string
}

// NewStandaloneRoot creates a standalone root
func NewStandaloneRoot(location, target string) StandaloneRoot {
	return StandaloneRoot{location: location, target: target}
}

func (r StandaloneRoot) Location() string { return r.location }
func (r StandaloneRoot) Target() string   { return r.target }
func (r StandaloneRoot) String() string   { return r.location + Separator + r.target }

// Deletable is true outside the protected prefixes when the parent directory
// is writable.
func (r StandaloneRoot) Deletable(policy *Policy) bool {
	return !policy.Protected(r.location) && policy.ParentWritable(r.location)
}

func (r StandaloneRoot) Delete(policy *Policy) error {
	return deleteRoot(policy, r)
}

// GenerationRoot is one numbered generation of a profile
type GenerationRoot struct {
	location   string
	target     string
	generation uint64
	active     Activity
}

func (r GenerationRoot) Location() string   { return r.location }
func (r GenerationRoot) Target() string     { return r.target }
func (r GenerationRoot) Generation() uint64 { return r.generation }
func (r GenerationRoot) Active() Activity   { return r.active }
func (r GenerationRoot) String() string     { return r.location + Separator + r.target }

// Deletable is only ever true for a generation known to be inactive.
// Generations are not expected under the protected prefixes; if one is, it
// is refused all the same.
func (r GenerationRoot) Deletable(policy *Policy) bool {
	return r.active == ActivityInactive &&
		!policy.Protected(r.location) &&
		policy.ParentWritable(r.location)
}

func (r GenerationRoot) Delete(policy *Policy) error {
	return deleteRoot(policy, r)
}
