package builtins

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/feel-lang/feel/internal/value"
)

// stringBuiltins mirrors the shape of the teacher's
// internal/interp/builtins_strings.go / string_helpers.go, rebased onto
// rune-counted, 1-based FEEL string semantics instead of DWScript's.
func stringBuiltins() map[string]*value.Value {
	return map[string]*value.Value{
		"string length":   native([]string{"string"}, builtinStringLength),
		"upper case":      native([]string{"string"}, builtinUpperCase),
		"lower case":      native([]string{"string"}, builtinLowerCase),
		"substring":       nativeVarArgs(builtinSubstring),
		"contains":        native([]string{"string", "match"}, builtinContains),
		"starts with":     native([]string{"string", "match"}, builtinStartsWith),
		"ends with":       native([]string{"string", "match"}, builtinEndsWith),
		"string join":     nativeVarArgs(builtinStringJoin),
		"split":           native([]string{"string", "delimiter"}, builtinSplit),
		"trim":            native([]string{"string"}, builtinTrim),
		"string":          native([]string{"value"}, builtinStringOf),
		"normalize space": native([]string{"string"}, builtinNormalizeSpace),
	}
}

func builtinStringLength(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(utf8.RuneCountInString(norm.NFC.String(s))))
}

func builtinUpperCase(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	return value.String(strings.ToUpper(s))
}

func builtinLowerCase(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	return value.String(strings.ToLower(s))
}

// builtinSubstring implements substring(string, start position[, length])
// with DMN FEEL's 1-based, negative-from-end indexing.
func builtinSubstring(args []*value.Value) *value.Value {
	if len(args) < 2 {
		return value.Null
	}
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	startN, ok := args[1].AsNumber()
	if !ok {
		return value.Null
	}
	runes := []rune(s)
	start := int(startN.IntPart())
	var startIdx int
	switch {
	case start > 0:
		startIdx = start - 1
	case start < 0:
		startIdx = len(runes) + start
	default:
		return value.Null
	}
	if startIdx < 0 || startIdx > len(runes) {
		return value.Null
	}
	end := len(runes)
	if len(args) >= 3 {
		lenN, ok := args[2].AsNumber()
		if !ok {
			return value.Null
		}
		end = startIdx + int(lenN.IntPart())
		if end > len(runes) {
			end = len(runes)
		}
	}
	if end < startIdx {
		return value.Null
	}
	return value.String(string(runes[startIdx:end]))
}

func builtinContains(args []*value.Value) *value.Value {
	s, ok1 := args[0].AsString()
	m, ok2 := args[1].AsString()
	if !ok1 || !ok2 {
		return value.Null
	}
	return value.Bool(strings.Contains(s, m))
}

func builtinStartsWith(args []*value.Value) *value.Value {
	s, ok1 := args[0].AsString()
	m, ok2 := args[1].AsString()
	if !ok1 || !ok2 {
		return value.Null
	}
	return value.Bool(strings.HasPrefix(s, m))
}

func builtinEndsWith(args []*value.Value) *value.Value {
	s, ok1 := args[0].AsString()
	m, ok2 := args[1].AsString()
	if !ok1 || !ok2 {
		return value.Null
	}
	return value.Bool(strings.HasSuffix(s, m))
}

// builtinStringJoin implements string join(list[, delimiter]).
func builtinStringJoin(args []*value.Value) *value.Value {
	if len(args) < 1 {
		return value.Null
	}
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	delim := ""
	if len(args) >= 2 {
		d, ok := args[1].AsString()
		if !ok {
			return value.Null
		}
		delim = d
	}
	parts := make([]string, len(list))
	for i, item := range list {
		s, ok := item.AsString()
		if !ok {
			return value.Null
		}
		parts[i] = s
	}
	return value.String(strings.Join(parts, delim))
}

func builtinSplit(args []*value.Value) *value.Value {
	s, ok1 := args[0].AsString()
	delim, ok2 := args[1].AsString()
	if !ok1 || !ok2 {
		return value.Null
	}
	parts := strings.Split(s, delim)
	out := make([]*value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.String(p)
	}
	return value.List(out)
}

func builtinTrim(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	return value.String(strings.TrimSpace(s))
}

// builtinNormalizeSpace collapses internal whitespace runs to single
// spaces and trims both ends; unlike `string length`, it applies no NFC
// normalization.
func builtinNormalizeSpace(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	return value.String(strings.Join(strings.Fields(s), " "))
}

// builtinStringOf renders any value the way the engine would print it,
// the general `string()` conversion function.
func builtinStringOf(args []*value.Value) *value.Value {
	if args[0].IsNull() {
		return value.Null
	}
	if s, ok := args[0].AsString(); ok {
		return value.String(s)
	}
	return value.String(args[0].String())
}
