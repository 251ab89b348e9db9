package gcroot

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gcroots/pkg/filesystem"
	"github.com/arthur-debert/gcroots/pkg/testutil"
	"github.com/stretchr/testify/assert"
)

// permissiveFS grants every permission check.
type permissiveFS struct {
	filesystem.FS
}

func (permissiveFS) Access(name string, mode uint32) error { return nil }

func TestPolicyProtected(t *testing.T) {
	policy := NewPolicy(filesystem.NewReadOnly(), "/nix/var/nix/gcroots/booted-system/")

	tests := []struct {
		location string
		want     bool
	}{
		{"/run/current-system", true},
		{"/run/booted-system/kernel", true},
		{"/run", true},
		{"/proc/42/exe", true},
		{"/run/../home/u/result", true},
		{"/nix/var/nix/gcroots/booted-system", true},
		{"/nix/var/nix/gcroots/booted-system/x", true},
		{"/runner/result", false},
		{"/process/result", false},
		{"/home/u/result", false},
		{"/nix/var/nix/gcroots/auto/abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Protected(tt.location))
		})
	}
}

func TestPolicyProtectedPrefixes(t *testing.T) {
	policy := NewPolicy(filesystem.NewReadOnly(), "/srv/roots/")
	assert.Equal(t, []string{"/run", "/proc", "/srv/roots"}, policy.ProtectedPrefixes())
}

func TestStandaloneDeletable(t *testing.T) {
	dir := t.TempDir()
	policy := NewPolicy(filesystem.NewReadOnly())

	assert.True(t, NewStandaloneRoot(filepath.Join(dir, "result"), "/nix/store/a").Deletable(policy))
	assert.False(t, NewStandaloneRoot(filepath.Join(dir, "missing-dir", "result"), "/nix/store/a").Deletable(policy))
}

func TestDeletableNeverUnderProtectedPrefixes(t *testing.T) {
	policy := NewPolicy(permissiveFS{filesystem.NewReadOnly()})

	for _, location := range []string{
		"/run/current-system",
		"/run/booted-system",
		"/proc/1/exe",
		"/proc/self/cwd",
		"/run/user/1000/profile-1-link",
	} {
		t.Run(location, func(t *testing.T) {
			assert.False(t, NewStandaloneRoot(location, "/nix/store/a").Deletable(policy))
			gen := GenerationRoot{location: location, target: "/nix/store/a", generation: 1, active: ActivityInactive}
			assert.False(t, gen.Deletable(policy))
		})
	}

	assert.True(t, NewStandaloneRoot("/home/u/result", "/nix/store/a").Deletable(policy))
}

func TestGenerationDeletable(t *testing.T) {
	dir := t.TempDir()
	policy := NewPolicy(filesystem.NewReadOnly())
	location := filepath.Join(dir, "p-1-link")

	tests := []struct {
		active Activity
		want   bool
	}{
		{ActivityInactive, true},
		{ActivityActive, false},
		{ActivityUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.active.String(), func(t *testing.T) {
			gen := GenerationRoot{location: location, target: "/nix/store/a", generation: 1, active: tt.active}
			assert.Equal(t, tt.want, gen.Deletable(policy))
		})
	}
}

func TestDeletableRequiresWritableParent(t *testing.T) {
	testutil.SkipIfRoot(t)

	dir := filepath.Join(t.TempDir(), "locked")
	testutil.CreateSymlink(t, "/nix/store/a", filepath.Join(dir, "result"))
	testutil.Chmod(t, dir, 0555)

	policy := NewPolicy(filesystem.NewReadOnly())
	assert.False(t, NewStandaloneRoot(filepath.Join(dir, "result"), "/nix/store/a").Deletable(policy))

	gen := GenerationRoot{location: filepath.Join(dir, "p-1-link"), active: ActivityInactive}
	assert.False(t, gen.Deletable(policy))
}

func TestActivityString(t *testing.T) {
	assert.Equal(t, "active", ActivityActive.String())
	assert.Equal(t, "inactive", ActivityInactive.String())
	assert.Equal(t, "unknown", ActivityUnknown.String())
}
