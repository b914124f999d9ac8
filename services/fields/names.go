package fields

import (
	"sort"
	"strings"
)

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (r *Registry) nameCounts() map[string]int {
	counts := make(map[string]int, len(r.fields))
	for _, f := range r.fields {
		if n := normalizeName(f.Name); n != "" {
			counts[n]++
		}
	}
	return counts
}

// IsDuplicateName reports whether two or more fields share name after
// trimming and lowercasing. Blank names are never duplicates.
func (r *Registry) IsDuplicateName(name string) bool {
	n := normalizeName(name)
	if n == "" {
		return false
	}
	return r.nameCounts()[n] > 1
}

// DuplicateNames returns the normalized names shared by two or more fields, sorted.
func (r *Registry) DuplicateNames() []string {
	dups := []string{}
	for name, count := range r.nameCounts() {
		if count > 1 {
			dups = append(dups, name)
		}
	}
	sort.Strings(dups)
	return dups
}
