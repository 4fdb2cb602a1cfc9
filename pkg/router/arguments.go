package router

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ReservedBucket collects the tokens that precede the first flag, which
// normally includes the program path. Flag tokens start with "-" so they
// never collide with it.
const ReservedBucket = "_"

// Arguments groups command-line values under the flag token they follow.
type Arguments struct {
	buckets *orderedmap.OrderedMap[string, []string]
}

func newArguments() *Arguments {
	return &Arguments{buckets: orderedmap.New[string, []string]()}
}

// IsFlag reports whether token names a bucket.
func IsFlag(token string) bool {
	return strings.HasPrefix(token, "-")
}

// ParseInputArguments partitions tokens by scan position: a token starting
// with "-" opens (or reopens) its bucket and every other token is appended to
// the most recent bucket. Tokens before the first flag go to ReservedBucket.
func ParseInputArguments(tokens []string) *Arguments {
	args := newArguments()
	current := ReservedBucket
	args.buckets.Set(current, []string{})

	for _, token := range tokens {
		if IsFlag(token) {
			current = token
			if _, ok := args.buckets.Get(current); !ok {
				args.buckets.Set(current, []string{})
			}
			continue
		}
		values, _ := args.buckets.Get(current)
		args.buckets.Set(current, append(values, token))
	}

	return args
}

// Values returns the values collected for token.
func (a *Arguments) Values(token string) ([]string, bool) {
	return a.buckets.Get(token)
}

// Leading returns the reserved bucket's values.
func (a *Arguments) Leading() []string {
	values, _ := a.buckets.Get(ReservedBucket)
	return values
}

// Flags returns the flag tokens in the order they first appeared.
func (a *Arguments) Flags() []string {
	flags := make([]string, 0, a.buckets.Len())
	for pair := a.buckets.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key != ReservedBucket {
			flags = append(flags, pair.Key)
		}
	}
	return flags
}

// Len returns the number of flag buckets, not counting ReservedBucket.
func (a *Arguments) Len() int {
	n := a.buckets.Len()
	if _, ok := a.buckets.Get(ReservedBucket); ok {
		n--
	}
	return n
}

// withoutReserved returns a copy of a without ReservedBucket.
func (a *Arguments) withoutReserved() *Arguments {
	out := newArguments()
	for pair := a.buckets.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == ReservedBucket {
			continue
		}
		out.buckets.Set(pair.Key, append([]string(nil), pair.Value...))
	}
	return out
}

// Validate returns a copy of a without ReservedBucket, or an
// ErrInvalidArgument error naming the first token missing from registry.
// a itself is left untouched.
func (a *Arguments) Validate(registry *Registry) (*Arguments, error) {
	out := a.withoutReserved()
	for _, flag := range out.Flags() {
		if _, ok := registry.Lookup(flag); !ok {
			return nil, &Error{
				Code:    CodeInvalidArgument,
				Message: "unrecognised flag " + flag,
				Flag:    flag,
			}
		}
	}
	return out, nil
}
