package value

import (
	"fmt"
	"time"
)

// Date, LocalTime and their zoned/combined variants are encoded as
// normalized integer components per the design notes in spec.md §9
// ("back by the host platform's standard calendar types if available;
// otherwise encode as normalized integer components"): the components
// are plain ints, but day-granularity and wraparound arithmetic is
// delegated to time.Time internally for correctness, then converted
// back to components, keeping the public Value API independent of
// time.Time's own timezone semantics.

type Date struct {
	Year, Month, Day int
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

func dateFromTime(t time.Time) Date {
	y, m, day := t.Date()
	return Date{Year: y, Month: int(m), Day: day}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	return dateFromTime(d.toTime().AddDate(0, 0, n))
}

// AddMonths returns d shifted by n months, normalizing month overflow
// the way time.AddDate does (e.g. Jan 31 + 1 month -> Mar 3).
func (d Date) AddMonths(n int) Date {
	return dateFromTime(d.toTime().AddDate(0, n, 0))
}

// DaysUntil returns the signed number of calendar days from d to other.
func (d Date) DaysUntil(other Date) int64 {
	return int64(other.toTime().Sub(d.toTime()).Hours() / 24)
}

// Compare returns -1, 0, 1 the way time.Time.Compare does.
func (d Date) Compare(other Date) int {
	return d.toTime().Compare(other.toTime())
}

func (d Date) Equal(other Date) bool { return d == other }

const nanosPerDay = int64(24 * time.Hour)

type LocalTime struct {
	Hour, Minute, Second, Nanos int
}

func (t LocalTime) toNanos() int64 {
	return int64(t.Hour)*int64(time.Hour) + int64(t.Minute)*int64(time.Minute) +
		int64(t.Second)*int64(time.Second) + int64(t.Nanos)
}

func localTimeFromNanos(n int64) LocalTime {
	n = ((n % nanosPerDay) + nanosPerDay) % nanosPerDay // wrap modulo 24h, spec.md §4.3.1
	h := n / int64(time.Hour)
	n -= h * int64(time.Hour)
	m := n / int64(time.Minute)
	n -= m * int64(time.Minute)
	s := n / int64(time.Second)
	n -= s * int64(time.Second)
	return LocalTime{Hour: int(h), Minute: int(m), Second: int(s), Nanos: int(n)}
}

func (t LocalTime) String() string {
	if t.Nanos == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nanos)
}

// AddDuration adds a signed nanosecond offset, wrapping modulo 24h.
func (t LocalTime) AddDuration(nanos int64) LocalTime {
	return localTimeFromNanos(t.toNanos() + nanos)
}

func (t LocalTime) Compare(other LocalTime) int {
	a, b := t.toNanos(), other.toNanos()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t LocalTime) Equal(other LocalTime) bool { return t == other }

type ZonedTime struct {
	LocalTime
	OffsetSeconds int
}

func (t ZonedTime) String() string {
	return t.LocalTime.String() + formatOffset(t.OffsetSeconds)
}

func (t ZonedTime) AddDuration(nanos int64) ZonedTime {
	return ZonedTime{LocalTime: t.LocalTime.AddDuration(nanos), OffsetSeconds: t.OffsetSeconds}
}

// Compare compares two zoned times by their instant (offset-adjusted).
func (t ZonedTime) Compare(other ZonedTime) int {
	a := t.toNanos() - int64(t.OffsetSeconds)*int64(time.Second)
	b := other.toNanos() - int64(other.OffsetSeconds)*int64(time.Second)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (t ZonedTime) Equal(other ZonedTime) bool { return t == other }

type LocalDateTime struct {
	Date
	LocalTime
}

func (dt LocalDateTime) String() string {
	return dt.Date.String() + "T" + dt.LocalTime.String()
}

func (dt LocalDateTime) toTime() time.Time {
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Nanos, time.UTC)
}

func localDateTimeFromTime(t time.Time) LocalDateTime {
	return LocalDateTime{
		Date:      dateFromTime(t),
		LocalTime: LocalTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanos: t.Nanosecond()},
	}
}

func (dt LocalDateTime) AddDayTimeDuration(nanos int64) LocalDateTime {
	return localDateTimeFromTime(dt.toTime().Add(time.Duration(nanos)))
}

func (dt LocalDateTime) AddYearMonthDuration(months int) LocalDateTime {
	return LocalDateTime{Date: dt.Date.AddMonths(months), LocalTime: dt.LocalTime}
}

func (dt LocalDateTime) SubDateTime(other LocalDateTime) int64 {
	return int64(dt.toTime().Sub(other.toTime()))
}

func (dt LocalDateTime) Compare(other LocalDateTime) int {
	return dt.toTime().Compare(other.toTime())
}

func (dt LocalDateTime) Equal(other LocalDateTime) bool { return dt == other }

type ZonedDateTime struct {
	LocalDateTime
	OffsetSeconds int
}

func (dt ZonedDateTime) String() string {
	return dt.LocalDateTime.String() + formatOffset(dt.OffsetSeconds)
}

func (dt ZonedDateTime) toTime() time.Time {
	loc := time.FixedZone("", dt.OffsetSeconds)
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day,
		dt.Hour, dt.Minute, dt.Second, dt.Nanos, loc)
}

func zonedDateTimeFromTime(t time.Time, offsetSeconds int) ZonedDateTime {
	local := t.In(time.FixedZone("", offsetSeconds))
	return ZonedDateTime{LocalDateTime: localDateTimeFromTime(local), OffsetSeconds: offsetSeconds}
}

func (dt ZonedDateTime) AddDayTimeDuration(nanos int64) ZonedDateTime {
	return zonedDateTimeFromTime(dt.toTime().Add(time.Duration(nanos)), dt.OffsetSeconds)
}

func (dt ZonedDateTime) AddYearMonthDuration(months int) ZonedDateTime {
	return ZonedDateTime{LocalDateTime: dt.LocalDateTime.AddYearMonthDuration(months), OffsetSeconds: dt.OffsetSeconds}
}

func (dt ZonedDateTime) SubDateTime(other ZonedDateTime) int64 {
	return int64(dt.toTime().Sub(other.toTime()))
}

func (dt ZonedDateTime) Compare(other ZonedDateTime) int {
	return dt.toTime().Compare(other.toTime())
}

func (dt ZonedDateTime) Equal(other ZonedDateTime) bool { return dt == other }

func formatOffset(seconds int) string {
	if seconds == 0 {
		return "Z"
	}
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}

// YearMonthDuration and DayTimeDuration are kept as distinct Go types
// (spec.md §3.1) so that comparisons across the two families fail to
// compile-time-distinct kinds and are rejected by the interpreter
// rather than silently coerced.

type YearMonthDuration struct {
	Months int // signed, normalized total months
}

func (d YearMonthDuration) String() string {
	sign := ""
	m := d.Months
	if m < 0 {
		sign = "-"
		m = -m
	}
	years, months := m/12, m%12
	return fmt.Sprintf("%sP%dY%dM", sign, years, months)
}

func (d YearMonthDuration) Add(other YearMonthDuration) YearMonthDuration {
	return YearMonthDuration{Months: d.Months + other.Months}
}

func (d YearMonthDuration) Compare(other YearMonthDuration) int {
	switch {
	case d.Months < other.Months:
		return -1
	case d.Months > other.Months:
		return 1
	default:
		return 0
	}
}

type DayTimeDuration struct {
	Nanos int64 // signed nanosecond count
}

func (d DayTimeDuration) String() string {
	sign := ""
	n := d.Nanos
	if n < 0 {
		sign = "-"
		n = -n
	}
	days := n / nanosPerDay
	n -= days * nanosPerDay
	hours := n / int64(time.Hour)
	n -= hours * int64(time.Hour)
	minutes := n / int64(time.Minute)
	n -= minutes * int64(time.Minute)
	seconds := n / int64(time.Second)
	return fmt.Sprintf("%sP%dDT%dH%dM%dS", sign, days, hours, minutes, seconds)
}

func (d DayTimeDuration) Add(other DayTimeDuration) DayTimeDuration {
	return DayTimeDuration{Nanos: d.Nanos + other.Nanos}
}

func (d DayTimeDuration) Compare(other DayTimeDuration) int {
	switch {
	case d.Nanos < other.Nanos:
		return -1
	case d.Nanos > other.Nanos:
		return 1
	default:
		return 0
	}
}
