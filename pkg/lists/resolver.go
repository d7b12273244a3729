package lists

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Resolver maps opaque list tokens to the mailing-list manager's internal
// numeric list IDs. The mapping is built once at startup and read-only
// afterward.
type Resolver struct {
	mapping map[string]int
}

// NewResolver creates a resolver over a copy of the given token mapping
func NewResolver(mapping map[string]int) *Resolver {
	m := make(map[string]int, len(mapping))
	for token, id := range mapping {
		m[token] = id
	}
	return &Resolver{mapping: m}
}

// Resolve returns the internal list ID for a token. Unknown tokens are not
// an error; the second return is false.
func (r *Resolver) Resolve(token string) (int, bool) {
	id, ok := r.mapping[token]
	return id, ok
}

// ResolveAll resolves a set of tokens to internal list IDs. Tokens without
// a mapping are dropped from the result; each drop is logged so the
// condition stays visible without failing the submission.
func (r *Resolver) ResolveAll(tokens []string) []int {
	return lo.FilterMap(tokens, func(token string, _ int) (int, bool) {
		id, ok := r.mapping[token]
		if !ok {
			log.Warn().Str("token", token).Msg("Dropping unmapped list token")
		}
		return id, ok
	})
}
