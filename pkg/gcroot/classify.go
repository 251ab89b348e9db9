package gcroot

import (
	"strconv"
	"strings"
)

const (
	generationSeparator = "-"
	generationSuffix    = "link"
)

// ParseGenerationName reports whether the file name of path follows the
// profile generation convention `<name>-<generation>-link` and returns the
// profile name and generation number when it does. The name may be empty.
func ParseGenerationName(path string) (name string, generation uint64, ok bool) {
	fileName := path[strings.LastIndex(path, "/")+1:]
	if strings.Count(fileName, generationSeparator) < 2 {
		return "", 0, false
	}

	rest, suffix := cutLast(fileName)
	if suffix != generationSuffix {
		return "", 0, false
	}
	name, number := cutLast(rest)
	if !isDigits(number) {
		return "", 0, false
	}

	generation, err := strconv.ParseUint(number, 10, 64)
	if err != nil {
		return "", 0, false
	}
	return name, generation, true
}

// ProfilePath returns the base path of the profile that path is a generation
// of: the same directory with the `-<generation>-link` suffix removed.
func ProfilePath(path string) (string, bool) {
	if _, _, ok := ParseGenerationName(path); !ok {
		return "", false
	}
	rest, _ := cutLast(path)
	base, _ := cutLast(rest)
	return base, true
}

// cutLast splits s around its last separator.
func cutLast(s string) (before, after string) {
	i := strings.LastIndex(s, generationSeparator)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+len(generationSeparator):]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
