// Package categorize applies ordered, collection-specific rule lists to
// normalized records, producing descriptive content categories and
// maintenance categories for curatorial follow-up.
package categorize

import (
	"context"
	"log/slog"
)

// Checker answers whether a named category exists on the target
// platform. Checks are idempotent and side-effect free.
type Checker interface {
	CategoryExists(ctx context.Context, name string) (bool, error)
}

// ExistenceCache memoizes positive existence checks for the duration of
// one batch run. The cache grows monotonically and is never invalidated
// mid-run; platform state is assumed stable for the batch window. The
// number of platform round-trips is bounded by the number of distinct
// unconfirmed category names, not the number of records.
type ExistenceCache struct {
	checker Checker
	known   map[string]bool
}

// NewExistenceCache creates an empty per-run cache over a checker.
func NewExistenceCache(checker Checker) *ExistenceCache {
	return &ExistenceCache{
		checker: checker,
		known:   make(map[string]bool),
	}
}

// Exists reports whether a category exists, serving confirmed names
// from the cache.
func (c *ExistenceCache) Exists(ctx context.Context, name string) (bool, error) {
	if c.known[name] {
		return true, nil
	}
	exists, err := c.checker.CategoryExists(ctx, name)
	if err != nil {
		return false, err
	}
	if exists {
		c.known[name] = true
	}
	slog.Debug("Checked category existence", "category", name, "exists", exists)
	return exists, nil
}

// Confirmed returns how many names the cache has confirmed so far.
func (c *ExistenceCache) Confirmed() int {
	return len(c.known)
}
