// Package gcroot builds an inventory of Nix garbage collection roots.
//
// A root is a symlink that keeps a store path alive. The listing printed by
// `nix-store --gc --print-roots` is parsed into entries, each entry is
// classified by its file name, and roots named `<profile>-<n>-link` are
// grouped under their profile when the profile symlink itself exists. The
// remaining roots are standalone.
//
// The resulting Roots value is built once and never changes. Deleting a root
// only touches the filesystem; callers take a fresh inventory afterwards.
package gcroot
