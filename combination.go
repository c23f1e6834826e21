package pathroute

import (
	"fmt"

	"github.com/zhamlin/pathroute/param"
)

// Combination is an ordered set of declarations. Match returns the first
// declaration that matches, in the order they were added, so the first
// registered wins when patterns overlap. Build finds the declaration by
// the key of the match.
//
// A Combination is never modified, Add returns a new one. Combinations
// extended from a shared prefix do not affect each other.
type Combination struct {
	decls []Declaration
}

// NewCombination returns a combination holding first.
func NewCombination(first Declaration) *Combination {
	return (&Combination{}).Add(first)
}

// Add returns a new combination with d tried after every declaration
// already in c.
func (c *Combination) Add(d Declaration) *Combination {
	if d == nil {
		panic("pathroute: Add called with a nil Declaration")
	}

	n := len(c.decls)
	// cap the slice so append always copies and never writes into
	// storage shared with another combination
	return &Combination{decls: append(c.decls[:n:n], d)}
}

// Match returns the match of the first declaration that matches path.
func (c *Combination) Match(path string) (Match, bool) {
	for _, d := range c.decls {
		if m, ok := d.Match(path); ok {
			return m, true
		}
	}
	return Match{}, false
}

// Build builds m.Params with the first declaration whose key is m.Key.
// It returns [ErrUnknownKey] when no declaration has that key.
func (c *Combination) Build(m Match) (string, error) {
	d, has := c.Lookup(m.Key)
	if !has {
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, m.Key)
	}
	return d.Build(m.Params)
}

// MustBuild is like [Combination.Build] but panics on error.
func (c *Combination) MustBuild(m Match) string {
	s, err := c.Build(m)
	if err != nil {
		panic(err)
	}
	return s
}

// Link builds the path of the declaration with the given key.
func (c *Combination) Link(key string, params param.Map) (string, error) {
	return c.Build(Match{Key: key, Params: params})
}

// Lookup returns the first declaration with the given key.
func (c *Combination) Lookup(key string) (Declaration, bool) {
	for _, d := range c.decls {
		if d.Key() == key {
			return d, true
		}
	}
	return nil, false
}

// Keys returns the keys of the declarations in order.
func (c *Combination) Keys() []string {
	keys := make([]string, len(c.decls))
	for i, d := range c.decls {
		keys[i] = d.Key()
	}
	return keys
}

// Declarations returns a copy of the declarations in order.
func (c *Combination) Declarations() []Declaration {
	return append([]Declaration(nil), c.decls...)
}

func (c *Combination) Len() int {
	return len(c.decls)
}
