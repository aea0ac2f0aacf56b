package eval

import "github.com/feel-lang/feel/internal/value"

// temporalArith implements the temporal combinations spec.md §4.3.1
// calls out explicitly. ok is false when the (op, left.Kind, right.Kind)
// triple isn't one of these combinations, telling the caller to fall
// through to Null.
func temporalArith(op string, left, right *value.Value) (*value.Value, bool) {
	switch op {
	case "+":
		return temporalAdd(left, right)
	case "-":
		return temporalSub(left, right)
	default:
		return nil, false
	}
}

func temporalAdd(left, right *value.Value) (*value.Value, bool) {
	if v, ok := dateOrDurationAdd(left, right); ok {
		return v, true
	}
	return dateOrDurationAdd(right, left)
}

// dateOrDurationAdd tries a+b where a is the date/time/duration side and
// b is the duration being added to it.
func dateOrDurationAdd(a, b *value.Value) (*value.Value, bool) {
	if d, ok := a.AsDate(); ok {
		if ym, ok := b.AsYearMonthDuration(); ok {
			return value.DateValue(d.AddMonths(ym.Months)), true
		}
		return nil, false
	}
	if lt, ok := a.AsLocalTime(); ok {
		if dt, ok := b.AsDayTimeDuration(); ok {
			return value.LocalTimeValue(lt.AddDuration(dt.Nanos)), true
		}
		return nil, false
	}
	if zt, ok := a.AsZonedTime(); ok {
		if dt, ok := b.AsDayTimeDuration(); ok {
			return value.ZonedTimeValue(zt.AddDuration(dt.Nanos)), true
		}
		return nil, false
	}
	if ldt, ok := a.AsLocalDateTime(); ok {
		if ym, ok := b.AsYearMonthDuration(); ok {
			return value.LocalDateTimeValue(ldt.AddYearMonthDuration(ym.Months)), true
		}
		if dt, ok := b.AsDayTimeDuration(); ok {
			return value.LocalDateTimeValue(ldt.AddDayTimeDuration(dt.Nanos)), true
		}
		return nil, false
	}
	if zdt, ok := a.AsZonedDateTime(); ok {
		if ym, ok := b.AsYearMonthDuration(); ok {
			return value.ZonedDateTimeValue(zdt.AddYearMonthDuration(ym.Months)), true
		}
		if dt, ok := b.AsDayTimeDuration(); ok {
			return value.ZonedDateTimeValue(zdt.AddDayTimeDuration(dt.Nanos)), true
		}
		return nil, false
	}
	if aym, ok := a.AsYearMonthDuration(); ok {
		if bym, ok := b.AsYearMonthDuration(); ok {
			return value.YearMonthDurationValue(aym.Add(bym)), true
		}
		return nil, false
	}
	if adt, ok := a.AsDayTimeDuration(); ok {
		if bdt, ok := b.AsDayTimeDuration(); ok {
			return value.DayTimeDurationValue(adt.Add(bdt)), true
		}
		return nil, false
	}
	return nil, false
}

func temporalSub(left, right *value.Value) (*value.Value, bool) {
	if ld, ok := left.AsDate(); ok {
		if rd, ok := right.AsDate(); ok {
			days := ld.DaysUntil(rd)
			return value.DayTimeDurationValue(value.DayTimeDuration{Nanos: -days * int64(nanosPerDayEval)}), true
		}
		if ym, ok := right.AsYearMonthDuration(); ok {
			return value.DateValue(ld.AddMonths(-ym.Months)), true
		}
		return nil, false
	}
	if ldt, ok := left.AsLocalDateTime(); ok {
		if rdt, ok := right.AsLocalDateTime(); ok {
			return value.DayTimeDurationValue(value.DayTimeDuration{Nanos: ldt.SubDateTime(rdt)}), true
		}
		if ym, ok := right.AsYearMonthDuration(); ok {
			return value.LocalDateTimeValue(ldt.AddYearMonthDuration(-ym.Months)), true
		}
		if dt, ok := right.AsDayTimeDuration(); ok {
			return value.LocalDateTimeValue(ldt.AddDayTimeDuration(-dt.Nanos)), true
		}
		return nil, false
	}
	if zdt, ok := left.AsZonedDateTime(); ok {
		if rdt, ok := right.AsZonedDateTime(); ok {
			return value.DayTimeDurationValue(value.DayTimeDuration{Nanos: zdt.SubDateTime(rdt)}), true
		}
		if ym, ok := right.AsYearMonthDuration(); ok {
			return value.ZonedDateTimeValue(zdt.AddYearMonthDuration(-ym.Months)), true
		}
		if dt, ok := right.AsDayTimeDuration(); ok {
			return value.ZonedDateTimeValue(zdt.AddDayTimeDuration(-dt.Nanos)), true
		}
		return nil, false
	}
	if lt, ok := left.AsLocalTime(); ok {
		if dt, ok := right.AsDayTimeDuration(); ok {
			return value.LocalTimeValue(lt.AddDuration(-dt.Nanos)), true
		}
		return nil, false
	}
	if zt, ok := left.AsZonedTime(); ok {
		if dt, ok := right.AsDayTimeDuration(); ok {
			return value.ZonedTimeValue(zt.AddDuration(-dt.Nanos)), true
		}
		return nil, false
	}
	if aym, ok := left.AsYearMonthDuration(); ok {
		if bym, ok := right.AsYearMonthDuration(); ok {
			return value.YearMonthDurationValue(aym.Add(value.YearMonthDuration{Months: -bym.Months})), true
		}
		return nil, false
	}
	if adt, ok := left.AsDayTimeDuration(); ok {
		if bdt, ok := right.AsDayTimeDuration(); ok {
			return value.DayTimeDurationValue(adt.Add(value.DayTimeDuration{Nanos: -bdt.Nanos})), true
		}
		return nil, false
	}
	return nil, false
}

const nanosPerDayEval = int64(24 * 60 * 60 * 1_000_000_000)
