package value

import (
	"regexp"
	"strconv"
	"time"
)

// Temporal literal parsing is total (spec.md §7): a malformed string
// yields ok=false and the caller (the date/time/duration built-ins in
// package builtins) converts that into silent Null rather than a surfaced
// error, matching date("not-a-date") being Null, not a Failure.

var dateRE = regexp.MustCompile(`^(-?\d{4,})-(\d{2})-(\d{2})$`)

func ParseDate(s string) (Date, bool) {
	m := dateRE.FindStringSubmatch(s)
	if m == nil {
		return Date{}, false
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if mo < 1 || mo > 12 || d < 1 || d > 31 {
		return Date{}, false
	}
	return Date{Year: y, Month: mo, Day: d}, true
}

var timeRE = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})(\.\d+)?(Z|[+-]\d{2}:\d{2})?$`)

// ParseTime parses an ISO-8601-ish time-of-day, returning either a
// LocalTime or a ZonedTime depending on whether an offset is present.
func ParseTime(s string) (local LocalTime, zoned ZonedTime, isZoned bool, ok bool) {
	m := timeRE.FindStringSubmatch(s)
	if m == nil {
		return LocalTime{}, ZonedTime{}, false, false
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	if h > 23 || mi > 59 || sec > 59 {
		return LocalTime{}, ZonedTime{}, false, false
	}
	nanos := 0
	if m[4] != "" {
		frac := m[4][1:]
		for len(frac) < 9 {
			frac += "0"
		}
		nanos, _ = strconv.Atoi(frac[:9])
	}
	lt := LocalTime{Hour: h, Minute: mi, Second: sec, Nanos: nanos}
	if m[5] == "" {
		return lt, ZonedTime{}, false, true
	}
	offset, ok2 := parseOffset(m[5])
	if !ok2 {
		return LocalTime{}, ZonedTime{}, false, false
	}
	return LocalTime{}, ZonedTime{LocalTime: lt, OffsetSeconds: offset}, true, true
}

func parseOffset(s string) (int, bool) {
	if s == "Z" {
		return 0, true
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	h, err1 := strconv.Atoi(s[1:3])
	m, err2 := strconv.Atoi(s[4:6])
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return sign * (h*3600 + m*60), true
}

// ParseDateTime parses "date T time[offset]" into a LocalDateTime or
// ZonedDateTime.
func ParseDateTime(s string) (local LocalDateTime, zoned ZonedDateTime, isZoned bool, ok bool) {
	for i := range s {
		if s[i] == 'T' || s[i] == 't' {
			d, dok := ParseDate(s[:i])
			if !dok {
				return LocalDateTime{}, ZonedDateTime{}, false, false
			}
			lt, zt, zonedFlag, tok := ParseTime(s[i+1:])
			if !tok {
				return LocalDateTime{}, ZonedDateTime{}, false, false
			}
			if zonedFlag {
				return LocalDateTime{}, ZonedDateTime{LocalDateTime: LocalDateTime{Date: d, LocalTime: zt.LocalTime}, OffsetSeconds: zt.OffsetSeconds}, true, true
			}
			return LocalDateTime{Date: d, LocalTime: lt}, ZonedDateTime{}, false, true
		}
	}
	return LocalDateTime{}, ZonedDateTime{}, false, false
}

var ymDurationRE = regexp.MustCompile(`^(-?)P(?:(\d+)Y)?(?:(\d+)M)?$`)
var dtDurationRE = regexp.MustCompile(`^(-?)P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?)?$`)

// ParseDuration distinguishes year-month from day-time ISO-8601
// durations by whether a 'Y' or 'M' (outside a 'T' section) appears,
// versus a 'D'/'T' form, per spec.md §3.1's distinct duration kinds.
func ParseDuration(s string) (ym YearMonthDuration, dt DayTimeDuration, isYM bool, ok bool) {
	if m := ymDurationRE.FindStringSubmatch(s); m != nil && (m[2] != "" || m[3] != "") {
		years, _ := strconv.Atoi(m[2])
		months, _ := strconv.Atoi(m[3])
		total := years*12 + months
		if m[1] == "-" {
			total = -total
		}
		return YearMonthDuration{Months: total}, DayTimeDuration{}, true, true
	}
	if m := dtDurationRE.FindStringSubmatch(s); m != nil && s != "P" {
		days, _ := strconv.Atoi(m[2])
		hours, _ := strconv.Atoi(m[3])
		minutes, _ := strconv.Atoi(m[4])
		secs := 0.0
		if m[5] != "" {
			secs, _ = strconv.ParseFloat(m[5], 64)
		}
		total := time.Duration(days)*24*time.Hour + time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute + time.Duration(secs*float64(time.Second))
		nanos := int64(total)
		if m[1] == "-" {
			nanos = -nanos
		}
		return YearMonthDuration{}, DayTimeDuration{Nanos: nanos}, false, true
	}
	return YearMonthDuration{}, DayTimeDuration{}, false, false
}
