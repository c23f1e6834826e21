package param

import (
	"maps"
	"slices"
)

// Registry maps type tags to codecs. A Registry is never modified once
// built, With and Merge return new registries.
type Registry struct {
	codecs map[string]Codec
}

// NewRegistry returns a registry holding a copy of codecs.
func NewRegistry(codecs map[string]Codec) Registry {
	return Registry{codecs: maps.Clone(codecs)}
}

// Default returns a registry with the string, number and bool codecs.
func Default() Registry {
	return NewRegistry(map[string]Codec{
		TypeString: String(),
		TypeNumber: Number(),
		TypeBool:   Bool(),
	})
}

// With returns a copy of the registry with codec registered under tag,
// replacing any codec already using that tag.
func (r Registry) With(tag string, codec Codec) Registry {
	return r.Merge(map[string]Codec{tag: codec})
}

// Merge returns a copy of the registry with all of codecs added.
func (r Registry) Merge(codecs map[string]Codec) Registry {
	merged := make(map[string]Codec, len(r.codecs)+len(codecs))
	maps.Copy(merged, r.codecs)
	maps.Copy(merged, codecs)
	return Registry{codecs: merged}
}

func (r Registry) Lookup(tag string) (Codec, bool) {
	c, has := r.codecs[tag]
	return c, has
}

// Tags returns the registered tags in sorted order.
func (r Registry) Tags() []string {
	return slices.Sorted(maps.Keys(r.codecs))
}

func (r Registry) Len() int {
	return len(r.codecs)
}
