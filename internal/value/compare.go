package value

// Compare orders two values of the same ordinal kind (spec.md §4.3.1:
// Number, String by code point, Date, the time/date-time kinds, and
// durations within the same family). It returns (cmp, true) on success;
// (0, false) when the values are not comparable (different kinds,
// Null, YearMonthDuration vs DayTimeDuration, or a non-ordinal kind).
func Compare(a, b *Value) (int, bool) {
	if a.IsNull() || b.IsNull() {
		return 0, false
	}
	if a.Kind() != b.Kind() {
		return 0, false
	}
	switch a.Kind() {
	case KindNumber:
		av, _ := a.AsNumber()
		bv, _ := b.AsNumber()
		return av.Cmp(bv), true
	case KindString:
		av, _ := a.AsString()
		bv, _ := b.AsString()
		switch {
		case av < bv:
			return -1, true
		case av > bv:
			return 1, true
		default:
			return 0, true
		}
	case KindDate:
		av, _ := a.AsDate()
		bv, _ := b.AsDate()
		return av.Compare(bv), true
	case KindLocalTime:
		av, _ := a.AsLocalTime()
		bv, _ := b.AsLocalTime()
		return av.Compare(bv), true
	case KindZonedTime:
		av, _ := a.AsZonedTime()
		bv, _ := b.AsZonedTime()
		return av.Compare(bv), true
	case KindLocalDateTime:
		av, _ := a.AsLocalDateTime()
		bv, _ := b.AsLocalDateTime()
		return av.Compare(bv), true
	case KindZonedDateTime:
		av, _ := a.AsZonedDateTime()
		bv, _ := b.AsZonedDateTime()
		return av.Compare(bv), true
	case KindYearMonthDuration:
		av, _ := a.AsYearMonthDuration()
		bv, _ := b.AsYearMonthDuration()
		return av.Compare(bv), true
	case KindDayTimeDuration:
		av, _ := a.AsDayTimeDuration()
		bv, _ := b.AsDayTimeDuration()
		return av.Compare(bv), true
	default:
		return 0, false
	}
}
