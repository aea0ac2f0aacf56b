package value

// Equal is structural equality between two values of the same kind: it
// never itself returns Null, and callers that need the `=` operator's
// cross-kind Null rule (spec.md §4.3.1) should go through eval.Equal,
// which wraps this function with that rule and calls it only once the
// kinds are already known to match. Lists compare element-wise,
// contexts compare as sets of entries, both recursively via this same
// function.
func Equal(a, b *Value) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindBool:
		av, _ := a.AsBool()
		bv, _ := b.AsBool()
		return av == bv
	case KindNumber:
		av, _ := a.AsNumber()
		bv, _ := b.AsNumber()
		return av.Equal(bv)
	case KindString:
		av, _ := a.AsString()
		bv, _ := b.AsString()
		return av == bv
	case KindDate:
		av, _ := a.AsDate()
		bv, _ := b.AsDate()
		return av.Equal(bv)
	case KindLocalTime:
		av, _ := a.AsLocalTime()
		bv, _ := b.AsLocalTime()
		return av.Equal(bv)
	case KindZonedTime:
		av, _ := a.AsZonedTime()
		bv, _ := b.AsZonedTime()
		return av.Equal(bv)
	case KindLocalDateTime:
		av, _ := a.AsLocalDateTime()
		bv, _ := b.AsLocalDateTime()
		return av.Equal(bv)
	case KindZonedDateTime:
		av, _ := a.AsZonedDateTime()
		bv, _ := b.AsZonedDateTime()
		return av.Equal(bv)
	case KindYearMonthDuration:
		av, _ := a.AsYearMonthDuration()
		bv, _ := b.AsYearMonthDuration()
		return av.Months == bv.Months
	case KindDayTimeDuration:
		av, _ := a.AsDayTimeDuration()
		bv, _ := b.AsDayTimeDuration()
		return av.Nanos == bv.Nanos
	case KindList:
		al, _ := a.AsList()
		bl, _ := b.AsList()
		if len(al) != len(bl) {
			return false
		}
		for i := range al {
			if !Equal(al[i], bl[i]) {
				return false
			}
		}
		return true
	case KindContext:
		ac, _ := a.AsContext()
		bc, _ := b.AsContext()
		return ac.EqualAsSet(bc, Equal)
	case KindRange:
		ar, _ := a.AsRange()
		br, _ := b.AsRange()
		return ar.LowerKind == br.LowerKind && ar.UpperKind == br.UpperKind &&
			Equal(ar.Lower, br.Lower) && Equal(ar.Upper, br.Upper)
	case KindFunction:
		af, _ := a.AsFunction()
		bf, _ := b.AsFunction()
		return af == bf
	case KindError:
		ae, _ := a.AsError()
		be, _ := b.AsError()
		return ae == be
	default:
		return false
	}
}
