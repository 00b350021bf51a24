package personas

import "fmt"

// Registry holds the immutable persona catalog. It is built once at startup
// and validated so that every alias target and every voice binding refers to
// a registered persona.
type Registry struct {
	order []string
	byKey map[string]Persona
}

func NewRegistry() (*Registry, error) {
	r := &Registry{
		byKey: make(map[string]Persona, len(catalog)),
	}
	for _, p := range catalog {
		if _, exists := r.byKey[p.Key]; exists {
			return nil, fmt.Errorf("duplicate persona key %q in catalog", p.Key)
		}
		r.byKey[p.Key] = p
		r.order = append(r.order, p.Key)
	}

	for synonym, target := range aliases {
		if _, ok := r.byKey[target]; !ok {
			return nil, fmt.Errorf("alias %q targets unregistered persona %q", synonym, target)
		}
	}
	for key := range voiceIDs {
		if _, ok := r.byKey[key]; !ok {
			return nil, fmt.Errorf("voice binding for unregistered persona %q", key)
		}
	}
	if _, ok := r.byKey[DefaultKey]; !ok {
		return nil, fmt.Errorf("default persona %q missing from catalog", DefaultKey)
	}

	return r, nil
}

// Lookup returns the persona for key, falling back to the default persona
// when key is not registered. Callers that need to distinguish an unknown
// key from an explicit request for the default must check Has first.
func (r *Registry) Lookup(key string) Persona {
	if p, ok := r.byKey[key]; ok {
		return p
	}
	return r.byKey[DefaultKey]
}

func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[key]
	return ok
}

// Keys returns the canonical persona keys in catalog order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}
