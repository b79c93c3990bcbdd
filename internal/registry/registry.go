// Package registry holds the capability table mapping action keys to
// web targets or per-platform launch candidates.
package registry

import (
	"strings"

	"github.com/rbright/taskar/internal/platform"
)

// Descriptor describes how one action key resolves. Exactly one of URL
// (web target) or Candidates (launch target) is set.
type Descriptor struct {
	URL        string
	Candidates map[platform.Identity][][]string
}

// IsWeb reports whether the descriptor opens a website.
func (d Descriptor) IsWeb() bool {
	return d.URL != ""
}

// CandidatesFor returns the ordered candidate list for one platform.
// A platform with no declared candidates yields an empty list, not an error.
func (d Descriptor) CandidatesFor(id platform.Identity) [][]string {
	return d.Candidates[id]
}

// Entry is one declared action key with its descriptor.
type Entry struct {
	Key        string
	Descriptor Descriptor
}

// Registry is the declaration-ordered capability table. It is built once
// at startup and read-only afterwards; lookup order is declaration order,
// which keeps containment-match ambiguity deterministic.
type Registry struct {
	entries []Entry
}

// New builds a registry from entries in declaration order. Extra entries
// from configuration come after the builtin table.
func New(entries ...[]Entry) *Registry {
	r := &Registry{}
	for _, group := range entries {
		r.entries = append(r.entries, group...)
	}
	return r
}

// Lookup finds the first entry whose key containment-matches the query
// key: either string may contain the other. Keys are compared lowercase.
func (r *Registry) Lookup(queryKey string) (Entry, bool) {
	key := strings.ToLower(strings.TrimSpace(queryKey))
	if key == "" {
		return Entry{}, false
	}
	for _, entry := range r.entries {
		if strings.Contains(key, entry.Key) || strings.Contains(entry.Key, key) {
			return entry, true
		}
	}
	return Entry{}, false
}

// Entries returns the table in declaration order for doctor output.
func (r *Registry) Entries() []Entry {
	return r.entries
}
