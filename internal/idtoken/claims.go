package idtoken

// Claims is the decoded token payload. An empty Claims is the result of a
// failed decode.
type Claims map[string]any

func (c Claims) Empty() bool {
	return len(c) == 0
}

// Lookup returns the claim value, treating a JSON null as absent.
func (c Claims) Lookup(name string) (any, bool) {
	v, ok := c[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Object returns the named claim when it is itself a JSON object.
func (c Claims) Object(name string) (Claims, bool) {
	v, ok := c.Lookup(name)
	if !ok {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Claims(m), true
}
