package builtins

import (
	"github.com/shopspring/decimal"

	"github.com/feel-lang/feel/internal/value"
)

// listBuiltins mirrors the teacher's internal/interp/builtins_collections.go,
// rebased onto FEEL lists (heterogeneous, 1-based, never raising on a
// malformed element — a mismatched element just drops the value to Null
// for that aggregate, per §7's silent-Null tier).
func listBuiltins() map[string]*value.Value {
	return map[string]*value.Value{
		"list contains": native([]string{"list", "element"}, builtinListContains),
		"count":         native([]string{"list"}, builtinCount),
		"min":           nativeVarArgs(builtinMin),
		"max":           nativeVarArgs(builtinMax),
		"sum":           nativeVarArgs(builtinSum),
		"mean":          nativeVarArgs(builtinMean),
		"and":           native([]string{"list"}, builtinAndList),
		"or":            native([]string{"list"}, builtinOrList),
		"sublist":       nativeVarArgs(builtinSublist),
		"append":        nativeVarArgs(builtinAppend),
		"concatenate":   nativeVarArgs(builtinConcatenate),
		"insert before": native([]string{"list", "position", "newItem"}, builtinInsertBefore),
		"remove":        native([]string{"list", "position"}, builtinRemove),
		"reverse":       native([]string{"list"}, builtinReverse),
		"distinct values": native([]string{"list"}, builtinDistinctValues),
		"flatten":       native([]string{"list"}, builtinFlatten),
	}
}

func builtinListContains(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	for _, item := range list {
		if value.Equal(item, args[1]) {
			return value.Bool(true)
		}
	}
	return value.Bool(false)
}

func builtinCount(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(len(list)))
}

// flattenNumberArgs lets min/max/sum/mean accept either a single list
// argument or a variadic run of numbers, matching DMN FEEL's overload.
func flattenNumberArgs(args []*value.Value) ([]decimal.Decimal, bool) {
	items := args
	if len(args) == 1 {
		if list, ok := args[0].AsList(); ok {
			items = list
		}
	}
	out := make([]decimal.Decimal, 0, len(items))
	for _, item := range items {
		n, ok := item.AsNumber()
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}

func builtinMin(args []*value.Value) *value.Value {
	nums, ok := flattenNumberArgs(args)
	if !ok || len(nums) == 0 {
		return value.Null
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n.LessThan(m) {
			m = n
		}
	}
	return value.Number(m)
}

func builtinMax(args []*value.Value) *value.Value {
	nums, ok := flattenNumberArgs(args)
	if !ok || len(nums) == 0 {
		return value.Null
	}
	m := nums[0]
	for _, n := range nums[1:] {
		if n.GreaterThan(m) {
			m = n
		}
	}
	return value.Number(m)
}

func builtinSum(args []*value.Value) *value.Value {
	nums, ok := flattenNumberArgs(args)
	if !ok {
		return value.Null
	}
	total := decimal.Zero
	for _, n := range nums {
		total = total.Add(n)
	}
	return value.Number(total)
}

func builtinMean(args []*value.Value) *value.Value {
	nums, ok := flattenNumberArgs(args)
	if !ok || len(nums) == 0 {
		return value.Null
	}
	total := decimal.Zero
	for _, n := range nums {
		total = total.Add(n)
	}
	return value.Number(total.Div(decimal.NewFromInt(int64(len(nums)))))
}

func builtinAndList(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	result := true
	for _, item := range list {
		b, ok := item.AsBool()
		if !ok {
			return value.Null
		}
		result = result && b
	}
	return value.Bool(result)
}

func builtinOrList(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	result := false
	for _, item := range list {
		b, ok := item.AsBool()
		if !ok {
			return value.Null
		}
		result = result || b
	}
	return value.Bool(result)
}

func builtinSublist(args []*value.Value) *value.Value {
	if len(args) < 2 {
		return value.Null
	}
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	startN, ok := args[1].AsNumber()
	if !ok {
		return value.Null
	}
	start := int(startN.IntPart())
	var startIdx int
	switch {
	case start > 0:
		startIdx = start - 1
	case start < 0:
		startIdx = len(list) + start
	default:
		return value.Null
	}
	if startIdx < 0 || startIdx > len(list) {
		return value.Null
	}
	end := len(list)
	if len(args) >= 3 {
		lenN, ok := args[2].AsNumber()
		if !ok {
			return value.Null
		}
		end = startIdx + int(lenN.IntPart())
		if end > len(list) {
			end = len(list)
		}
	}
	if end < startIdx {
		return value.Null
	}
	out := make([]*value.Value, end-startIdx)
	copy(out, list[startIdx:end])
	return value.List(out)
}

func builtinAppend(args []*value.Value) *value.Value {
	if len(args) < 1 {
		return value.Null
	}
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	out := make([]*value.Value, len(list), len(list)+len(args)-1)
	copy(out, list)
	out = append(out, args[1:]...)
	return value.List(out)
}

func builtinConcatenate(args []*value.Value) *value.Value {
	var out []*value.Value
	for _, a := range args {
		list, ok := a.AsList()
		if !ok {
			return value.Null
		}
		out = append(out, list...)
	}
	return value.List(out)
}

func builtinInsertBefore(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	posN, ok := args[1].AsNumber()
	if !ok {
		return value.Null
	}
	pos := int(posN.IntPart())
	if pos < 1 || pos > len(list)+1 {
		return value.Null
	}
	out := make([]*value.Value, 0, len(list)+1)
	out = append(out, list[:pos-1]...)
	out = append(out, args[2])
	out = append(out, list[pos-1:]...)
	return value.List(out)
}

func builtinRemove(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	posN, ok := args[1].AsNumber()
	if !ok {
		return value.Null
	}
	pos := int(posN.IntPart())
	if pos < 1 || pos > len(list) {
		return value.Null
	}
	out := make([]*value.Value, 0, len(list)-1)
	out = append(out, list[:pos-1]...)
	out = append(out, list[pos:]...)
	return value.List(out)
}

func builtinReverse(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	out := make([]*value.Value, len(list))
	for i, item := range list {
		out[len(list)-1-i] = item
	}
	return value.List(out)
}

func builtinDistinctValues(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	var out []*value.Value
	for _, item := range list {
		dup := false
		for _, seen := range out {
			if value.Equal(seen, item) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, item)
		}
	}
	return value.List(out)
}

func builtinFlatten(args []*value.Value) *value.Value {
	list, ok := args[0].AsList()
	if !ok {
		return value.Null
	}
	var out []*value.Value
	var walk func([]*value.Value)
	walk = func(items []*value.Value) {
		for _, item := range items {
			if nested, ok := item.AsList(); ok {
				walk(nested)
				continue
			}
			out = append(out, item)
		}
	}
	walk(list)
	return value.List(out)
}
