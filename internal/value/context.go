package value

import "strings"

// Context is an ordered sequence of (name, value) pairs with unique
// names (spec.md §3.1). Lookup is by name; iteration preserves
// insertion order. Once built, a Context is immutable.
type Context struct {
	keys   []string
	values map[string]*Value
}

// NewContext returns an empty Context. Set appends new keys in order; a
// repeated key overwrites the earlier value but keeps the first
// occurrence's position, matching how a FEEL context literal with a
// repeated key behaves.
func NewContext() *Context {
	return &Context{values: make(map[string]*Value)}
}

func (c *Context) Set(name string, v *Value) *Context {
	if _, exists := c.values[name]; !exists {
		c.keys = append(c.keys, name)
	}
	c.values[name] = v
	return c
}

func (c *Context) Get(name string) (*Value, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[name]
	return v, ok
}

func (c *Context) Keys() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Context) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Entries returns the (name, value) pairs in insertion order.
func (c *Context) Entries() []ContextEntry {
	if c == nil {
		return nil
	}
	out := make([]ContextEntry, 0, len(c.keys))
	for _, k := range c.keys {
		out = append(out, ContextEntry{Name: k, Value: c.values[k]})
	}
	return out
}

type ContextEntry struct {
	Name  string
	Value *Value
}

func (c *Context) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range c.Entries() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.Name)
		sb.WriteString(": ")
		sb.WriteString(e.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// EqualAsSet compares two contexts order-insensitively by entry set
// (spec.md §3.1, §4.3.1), using eq to compare nested values deeply.
func (c *Context) EqualAsSet(other *Context, eq func(a, b *Value) bool) bool {
	if c.Len() != other.Len() {
		return false
	}
	for _, k := range c.keys {
		ov, ok := other.Get(k)
		if !ok || !eq(c.values[k], ov) {
			return false
		}
	}
	return true
}
