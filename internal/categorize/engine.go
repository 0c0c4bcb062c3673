package categorize

import (
	"context"
	"fmt"

	"github.com/wikimedia-sverige/batchinfo/internal/mapping"
	"github.com/wikimedia-sverige/batchinfo/internal/record"
)

// Env is the shared read-mostly state a rule list runs against:
// the loaded mapping tables, the per-run existence cache and the
// maintenance category stem. One Env is built per batch run and
// discarded with it.
type Env struct {
	Mappings mapping.Set
	Cache    *ExistenceCache
	Stem     string
}

// MaintenanceCat builds a maintenance category under the batch stem.
func (e *Env) MaintenanceCat(suffix string) string {
	return e.Stem + ": " + suffix
}

// Rule contributes zero or more category candidates for one record.
// Every rule guards on its own field preconditions and is evaluated for
// every record regardless of whether earlier rules matched.
type Rule struct {
	Name  string
	Apply func(ctx context.Context, rec *record.Normalized, set *Set) error
}

// Engine runs an ordered rule list.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine over an ordered rule list.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Infer applies every rule in order and returns the accumulated
// category set. A rule error (always a platform failure) aborts the
// record's inference.
func (e *Engine) Infer(ctx context.Context, rec *record.Normalized) (*Set, error) {
	set := NewSet()
	for _, rule := range e.rules {
		if err := rule.Apply(ctx, rec, set); err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.Name, err)
		}
	}
	return set, nil
}
