package gcroot

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/gcroots/pkg/errors"
)

// Separator sits between a root's location and its target in a listing line.
const Separator = " -> "

// Entry is one parsed listing line
type Entry struct {
	Location string
	Target   string
}

// String renders the entry back into listing form.
func (e Entry) String() string {
	return e.Location + Separator + e.Target
}

// ParseLine splits a listing line on the last separator. Lines for process
// roots under /proc and synthetic `{...}` entries are dropped (ok is false).
// A line without the separator means the listing format changed, which is
// reported as ErrListingFormat.
func ParseLine(line string) (entry Entry, ok bool, err error) {
	i := strings.LastIndex(line, Separator)
	if i < 0 {
		return Entry{}, false, errors.Newf(errors.ErrListingFormat,
			"listing line %q does not contain %q", line, Separator)
	}

	location, target := line[:i], line[i+len(Separator):]
	if excluded(location) {
		return Entry{}, false, nil
	}
	return Entry{Location: location, Target: target}, true, nil
}

func excluded(location string) bool {
	if strings.HasPrefix(location, "/proc") {
		return true
	}
	return strings.HasPrefix(location, "{") && strings.HasSuffix(location, "}")
}

// ParseListing parses a complete listing. Any malformed line fails the whole
// parse so that no partial inventory is ever built.
func ParseListing(data []byte) ([]Entry, error) {
	if !utf8.Valid(data) {
		return nil, errors.New(errors.ErrListingEncoding, "root listing is not valid UTF-8")
	}

	var entries []Entry
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		entry, ok, err := ParseLine(line)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrListingFormat, "line %d", n+1).
				WithDetail("line", n+1)
		}
		if ok {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}
