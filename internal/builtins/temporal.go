package builtins

import "github.com/feel-lang/feel/internal/value"

// temporalBuiltins implements the date/time/duration constructors
// (spec.md §7: "temporal literal parsing is total... the constructor
// itself is total") plus a handful of component accessors, grounded on
// the teacher's internal/interp/builtins_datetime.go and
// builtins_datetime_info.go split between construction and inspection.
func temporalBuiltins() map[string]*value.Value {
	return map[string]*value.Value{
		"date":                      native([]string{"from"}, builtinDate),
		"time":                      native([]string{"from"}, builtinTime),
		"date and time":             native([]string{"from"}, builtinDateAndTime),
		"duration":                  native([]string{"from"}, builtinDuration),
		"years and months duration": native([]string{"from", "to"}, builtinYearsAndMonthsDuration),

		"year":   native([]string{"value"}, builtinYear),
		"month":  native([]string{"value"}, builtinMonth),
		"day":    native([]string{"value"}, builtinDay),
		"hour":   native([]string{"value"}, builtinHour),
		"minute": native([]string{"value"}, builtinMinute),
		"second": native([]string{"value"}, builtinSecond),
	}
}

func builtinDate(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	d, ok := value.ParseDate(s)
	if !ok {
		return value.Null
	}
	return value.DateValue(d)
}

func builtinTime(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	local, zoned, isZoned, ok := value.ParseTime(s)
	if !ok {
		return value.Null
	}
	if isZoned {
		return value.ZonedTimeValue(zoned)
	}
	return value.LocalTimeValue(local)
}

func builtinDateAndTime(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	local, zoned, isZoned, ok := value.ParseDateTime(s)
	if !ok {
		return value.Null
	}
	if isZoned {
		return value.ZonedDateTimeValue(zoned)
	}
	return value.LocalDateTimeValue(local)
}

func builtinDuration(args []*value.Value) *value.Value {
	s, ok := args[0].AsString()
	if !ok {
		return value.Null
	}
	ym, dt, isYM, ok := value.ParseDuration(s)
	if !ok {
		return value.Null
	}
	if isYM {
		return value.YearMonthDurationValue(ym)
	}
	return value.DayTimeDurationValue(dt)
}

// builtinYearsAndMonthsDuration computes the signed year-month span
// between two dates or date-times, per the DMN FEEL function of the
// same name; anything else is Null.
func builtinYearsAndMonthsDuration(args []*value.Value) *value.Value {
	from, to := args[0], args[1]
	fd, fok := asDateComponents(from)
	td, tok := asDateComponents(to)
	if !fok || !tok {
		return value.Null
	}
	months := (td.Year-fd.Year)*12 + (td.Month - fd.Month)
	if td.Day < fd.Day {
		months--
	}
	return value.YearMonthDurationValue(value.YearMonthDuration{Months: months})
}

func asDateComponents(v *value.Value) (value.Date, bool) {
	if d, ok := v.AsDate(); ok {
		return d, true
	}
	if dt, ok := v.AsLocalDateTime(); ok {
		return dt.Date, true
	}
	if dt, ok := v.AsZonedDateTime(); ok {
		return dt.Date, true
	}
	return value.Date{}, false
}

func builtinYear(args []*value.Value) *value.Value {
	d, ok := asDateComponents(args[0])
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(d.Year))
}

func builtinMonth(args []*value.Value) *value.Value {
	d, ok := asDateComponents(args[0])
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(d.Month))
}

func builtinDay(args []*value.Value) *value.Value {
	d, ok := asDateComponents(args[0])
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(d.Day))
}

func asTimeComponents(v *value.Value) (value.LocalTime, bool) {
	if t, ok := v.AsLocalTime(); ok {
		return t, true
	}
	if t, ok := v.AsZonedTime(); ok {
		return t.LocalTime, true
	}
	if dt, ok := v.AsLocalDateTime(); ok {
		return dt.LocalTime, true
	}
	if dt, ok := v.AsZonedDateTime(); ok {
		return dt.LocalTime, true
	}
	return value.LocalTime{}, false
}

func builtinHour(args []*value.Value) *value.Value {
	t, ok := asTimeComponents(args[0])
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(t.Hour))
}

func builtinMinute(args []*value.Value) *value.Value {
	t, ok := asTimeComponents(args[0])
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(t.Minute))
}

func builtinSecond(args []*value.Value) *value.Value {
	t, ok := asTimeComponents(args[0])
	if !ok {
		return value.Null
	}
	return value.NumberFromInt(int64(t.Second))
}
