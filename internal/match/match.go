// Package match implements the case-insensitive substring matching used for
// filtering and highlighting student records.
package match

import (
	"regexp"
	"sync"
)

// Segment is one run of a haystack, either matching the needle or not.
type Segment struct {
	Text  string
	Match bool
}

// Matches reports whether needle occurs in haystack, ignoring case. An empty
// needle matches everything. It folds case exactly like Split, so a record
// that passes the filter always has something to highlight.
func Matches(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return pattern(needle).MatchString(haystack)
}

// Split breaks haystack into ordered runs, marking every case-insensitive
// occurrence of needle. The needle is treated literally. Casing of the
// haystack is preserved.
func Split(haystack, needle string) []Segment {
	if needle == "" {
		return []Segment{{Text: haystack}}
	}
	if haystack == "" {
		return []Segment{}
	}

	re := pattern(needle)
	locs := re.FindAllStringIndex(haystack, -1)
	if len(locs) == 0 {
		return []Segment{{Text: haystack}}
	}

	out := make([]Segment, 0, len(locs)*2+1)
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			out = append(out, Segment{Text: haystack[last:loc[0]]})
		}
		out = append(out, Segment{Text: haystack[loc[0]:loc[1]], Match: true})
		last = loc[1]
	}
	if last < len(haystack) {
		out = append(out, Segment{Text: haystack[last:]})
	}
	return out
}

// lastPattern holds the most recently compiled needle; a filter pass asks
// for the same one for every record.
var lastPattern struct {
	mu     sync.Mutex
	needle string
	re     *regexp.Regexp
}

func pattern(needle string) *regexp.Regexp {
	lastPattern.mu.Lock()
	defer lastPattern.mu.Unlock()
	if lastPattern.re == nil || lastPattern.needle != needle {
		lastPattern.needle = needle
		lastPattern.re = regexp.MustCompile("(?i)" + regexp.QuoteMeta(needle))
	}
	return lastPattern.re
}
