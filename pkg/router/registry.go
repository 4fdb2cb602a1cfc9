package router

import (
	"context"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Handler runs the behaviour behind a flag. args are the values that followed
// the flag token on the command line.
type Handler interface {
	Execute(ctx context.Context, args ...string) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, args ...string) error

// Execute calls f(ctx, args...).
func (f HandlerFunc) Execute(ctx context.Context, args ...string) error {
	return f(ctx, args...)
}

// Definition describes one supported flag.
type Definition struct {
	// Name is the canonical name shared by all aliases of the flag.
	Name        string
	Description string
	// AllowedOptions is shown in the usage table only; values are not checked against it.
	AllowedOptions []string
	Handler        Handler
}

// Registry maps flag tokens such as "-h" or "--help" to definitions,
// preserving insertion order.
type Registry struct {
	entries *orderedmap.OrderedMap[string, Definition]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: orderedmap.New[string, Definition]()}
}

// Set registers def under token, replacing any previous definition in place.
func (r *Registry) Set(token string, def Definition) *Registry {
	r.entries.Set(token, def)
	return r
}

// Alias registers def under every token.
func (r *Registry) Alias(def Definition, tokens ...string) *Registry {
	for _, token := range tokens {
		r.Set(token, def)
	}
	return r
}

// Lookup returns the definition registered for token.
func (r *Registry) Lookup(token string) (Definition, bool) {
	if r == nil {
		return Definition{}, false
	}
	return r.entries.Get(token)
}

// Tokens returns the registered tokens in insertion order.
func (r *Registry) Tokens() []string {
	if r == nil {
		return nil
	}
	tokens := make([]string, 0, r.entries.Len())
	for pair := r.entries.Oldest(); pair != nil; pair = pair.Next() {
		tokens = append(tokens, pair.Key)
	}
	return tokens
}

// Len returns the number of registered tokens.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.entries.Len()
}

// Merge returns a new registry holding r's entries overridden by other's.
// Overridden tokens keep their position; new tokens are appended in order.
// Neither input is modified.
func (r *Registry) Merge(other *Registry) *Registry {
	merged := NewRegistry()
	for _, src := range []*Registry{r, other} {
		if src == nil {
			continue
		}
		for pair := src.entries.Oldest(); pair != nil; pair = pair.Next() {
			merged.Set(pair.Key, pair.Value)
		}
	}
	return merged
}
