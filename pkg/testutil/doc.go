// Package testutil builds GC root fixtures for tests: real symlink trees in
// temporary directories together with the listing a `nix-store --gc
// --print-roots` run over them would print.
package testutil
