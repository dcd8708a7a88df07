package binding

import "github.com/jonathan/resume-engine/internal/types"

// Enricher derives additional fields after the declarative bind completes.
// Implementations must not mutate the resume; returned values are merged into
// the bound data under their section/field keys. An enricher failure is
// recorded as a warning and never fails the bind.
type Enricher interface {
	Name() string
	Enrich(resume *types.Resume, data types.BoundData) (map[string]map[string]any, error)
}
