package gcroot

import (
	"testing"

	"github.com/arthur-debert/gcroots/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Entry
		wantOK bool
	}{
		{"plain", "/b/other -> /nix/store/zzz", Entry{"/b/other", "/nix/store/zzz"}, true},
		{"space in path", "/home/u/my project/result -> /nix/store/abc", Entry{"/home/u/my project/result", "/nix/store/abc"}, true},
		{"split on last separator", "/odd -> name -> /nix/store/abc", Entry{"/odd -> name", "/nix/store/abc"}, true},
		{"proc root", "/proc/1234/maps -> /nix/store/abc", Entry{}, false},
		{"proc prefix without slash", "/procfoo -> /nix/store/abc", Entry{}, false},
		{"censored", "{censored} -> /nix/store/abc", Entry{}, false},
		{"memory marker", "{memory:12} -> /nix/store/abc", Entry{}, false},
		{"brace only at start", "{half -> /nix/store/abc", Entry{"{half", "/nix/store/abc"}, true},
		{"run is kept", "/run/current-system -> /nix/store/abc", Entry{"/run/current-system", "/nix/store/abc"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.Equal(t, tt.line, got.String())
			}
		})
	}
}

func TestParseLineMissingSeparator(t *testing.T) {
	_, _, err := ParseLine("/a/b/nix/store/abc")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrListingFormat))
}

func TestParseListing(t *testing.T) {
	data := []byte("/a/profile-1-link -> /nix/store/xxx\r\n" +
		"/proc/12/exe -> /nix/store/bin\n" +
		"\n" +
		"{censored} -> /nix/store/secret\n" +
		"/b/other -> /nix/store/zzz\n")

	entries, err := ParseListing(data)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{"/a/profile-1-link", "/nix/store/xxx"},
		{"/b/other", "/nix/store/zzz"},
	}, entries)
}

func TestParseListingEmpty(t *testing.T) {
	entries, err := ParseListing(nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseListingFailsWholeParse(t *testing.T) {
	data := []byte("/a -> /nix/store/a\ngarbage line\n/b -> /nix/store/b\n")

	entries, err := ParseListing(data)
	require.Error(t, err)
	assert.Nil(t, entries)
	assert.True(t, errors.IsErrorCode(err, errors.ErrListingFormat))
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseListingRejectsInvalidUTF8(t *testing.T) {
	_, err := ParseListing([]byte("/a\xff -> /nix/store/a\n"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrListingEncoding))
}
