package feel

import (
	"github.com/shopspring/decimal"

	"github.com/feel-lang/feel/internal/value"
)

// ValueMapper converts between host values and the engine's internal
// Value domain (spec.md §6). ToInternal/FromInternal both report
// whether they recognized the value; a chain falls through on false so
// the next mapper (or the built-in default, which always sits last) gets
// a turn.
type ValueMapper interface {
	ToInternal(hostValue any) (*value.Value, bool)
	FromInternal(v *value.Value) (any, bool)
}

// toInternal walks the configured mapper chain, then falls back to the
// built-in default mapper (spec.md §9: "the default mapper sits last
// and covers primitive cases").
func (e *Engine) toInternal(hostValue any) (*value.Value, bool) {
	for _, m := range e.mappers {
		if v, ok := m.ToInternal(hostValue); ok {
			return v, true
		}
	}
	return defaultToInternal(hostValue)
}

func (e *Engine) fromInternal(v *value.Value) any {
	for _, m := range e.mappers {
		if hv, ok := m.FromInternal(v); ok {
			return hv
		}
	}
	hv, _ := defaultFromInternal(v)
	return hv
}

// defaultToInternal handles booleans, integers, floats, decimal.Decimal,
// strings, nil, and recursively-mapped slices/maps (spec.md §6).
func defaultToInternal(hostValue any) (*value.Value, bool) {
	switch hv := hostValue.(type) {
	case nil:
		return value.Null, true
	case *value.Value:
		return hv, true
	case bool:
		return value.Bool(hv), true
	case int:
		return value.NumberFromInt(int64(hv)), true
	case int32:
		return value.NumberFromInt(int64(hv)), true
	case int64:
		return value.NumberFromInt(hv), true
	case float32:
		return value.Number(decimal.NewFromFloat32(hv)), true
	case float64:
		return value.Number(decimal.NewFromFloat(hv)), true
	case decimal.Decimal:
		return value.Number(hv), true
	case string:
		return value.String(hv), true
	case []any:
		items := make([]*value.Value, len(hv))
		for i, item := range hv {
			v, ok := defaultToInternal(item)
			if !ok {
				return nil, false
			}
			items[i] = v
		}
		return value.List(items), true
	case map[string]any:
		c := value.NewContext()
		for k, item := range hv {
			v, ok := defaultToInternal(item)
			if !ok {
				return nil, false
			}
			c.Set(k, v)
		}
		return value.ContextValue(c), true
	default:
		return nil, false
	}
}

// defaultFromInternal is the inverse of defaultToInternal, rendering
// every engine Value kind as a plain Go value a host can consume without
// importing package value.
func defaultFromInternal(v *value.Value) (any, bool) {
	if v == nil || v.IsNull() {
		return nil, true
	}
	switch v.Kind() {
	case value.KindBool:
		b, _ := v.AsBool()
		return b, true
	case value.KindNumber:
		n, _ := v.AsNumber()
		return n, true
	case value.KindString:
		s, _ := v.AsString()
		return s, true
	case value.KindList:
		list, _ := v.AsList()
		out := make([]any, len(list))
		for i, item := range list {
			out[i], _ = defaultFromInternal(item)
		}
		return out, true
	case value.KindContext:
		c, _ := v.AsContext()
		out := map[string]any{}
		for _, entry := range c.Entries() {
			out[entry.Name], _ = defaultFromInternal(entry.Value)
		}
		return out, true
	default:
		// Temporal kinds, ranges, functions, and errors are returned as
		// their own String() rendering (mapped back in, that is a plain string); embedders needing the richer
		// typed form should use a custom ValueMapper.
		return v.String(), true
	}
}
