package categorize

import "sort"

// Set collects the two disjoint category collections of one record:
// descriptive content categories and maintenance categories. Both are
// unordered sets until rendering, which sorts them for deterministic
// output.
type Set struct {
	content map[string]struct{}
	meta    map[string]struct{}
}

// NewSet creates an empty category set.
func NewSet() *Set {
	return &Set{
		content: make(map[string]struct{}),
		meta:    make(map[string]struct{}),
	}
}

// AddContent adds a content category. Empty names are dropped so a rule
// can add an optional mapping field without guarding.
func (s *Set) AddContent(name string) {
	if name != "" {
		s.content[name] = struct{}{}
	}
}

// AddMeta adds a maintenance category.
func (s *Set) AddMeta(name string) {
	if name != "" {
		s.meta[name] = struct{}{}
	}
}

// HasContent reports whether a content category is present.
func (s *Set) HasContent(name string) bool {
	_, ok := s.content[name]
	return ok
}

// HasMeta reports whether a maintenance category is present.
func (s *Set) HasMeta(name string) bool {
	_, ok := s.meta[name]
	return ok
}

// Content returns the content categories in sorted order.
func (s *Set) Content() []string {
	return sorted(s.content)
}

// Meta returns the maintenance categories in sorted order.
func (s *Set) Meta() []string {
	return sorted(s.meta)
}

func sorted(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
