// Package value implements the FEEL value domain (spec.md §3.1): a
// tagged union over null, boolean, arbitrary-precision number, string,
// five temporal kinds, two duration kinds, list, context, range,
// function and error. All Values are immutable once constructed.
package value

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tags the variant a Value holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindDate
	KindLocalTime
	KindZonedTime
	KindLocalDateTime
	KindZonedDateTime
	KindYearMonthDuration
	KindDayTimeDuration
	KindList
	KindContext
	KindRange
	KindFunction
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindDate:
		return "date"
	case KindLocalTime:
		return "time"
	case KindZonedTime:
		return "time"
	case KindLocalDateTime:
		return "date and time"
	case KindZonedDateTime:
		return "date and time"
	case KindYearMonthDuration, KindDayTimeDuration:
		return "duration"
	case KindList:
		return "list"
	case KindContext:
		return "context"
	case KindRange:
		return "range"
	case KindFunction:
		return "function"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Value is the universal result type produced by parsing+evaluating a
// FEEL expression (spec.md §3.1). A single tagged struct is used instead
// of a Go interface hierarchy so the interpreter can pattern-match
// exhaustively by Kind in one switch.
type Value struct {
	kind Kind

	boolVal   bool
	numberVal decimal.Decimal
	stringVal string

	dateVal          Date
	localTimeVal     LocalTime
	zonedTimeVal     ZonedTime
	localDateTimeVal LocalDateTime
	zonedDateTimeVal ZonedDateTime
	ymDurationVal    YearMonthDuration
	dtDurationVal    DayTimeDuration

	listVal     []*Value
	contextVal  *Context
	rangeVal    *Range
	functionVal *Function
	errorVal    string
}

func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

func (v *Value) IsNull() bool { return v.Kind() == KindNull }

// Null is the sole Null inhabitant (spec.md §3.1).
var Null = &Value{kind: KindNull}

func Bool(b bool) *Value { return &Value{kind: KindBool, boolVal: b} }

func (v *Value) AsBool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.boolVal, true
}

func Number(d decimal.Decimal) *Value { return &Value{kind: KindNumber, numberVal: d} }

func NumberFromInt(n int64) *Value { return Number(decimal.NewFromInt(n)) }

func NumberFromString(s string) (*Value, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return Number(d), nil
}

func (v *Value) AsNumber() (decimal.Decimal, bool) {
	if v.Kind() != KindNumber {
		return decimal.Decimal{}, false
	}
	return v.numberVal, true
}

func String(s string) *Value { return &Value{kind: KindString, stringVal: s} }

func (v *Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.stringVal, true
}

func DateValue(d Date) *Value { return &Value{kind: KindDate, dateVal: d} }
func (v *Value) AsDate() (Date, bool) {
	if v.Kind() != KindDate {
		return Date{}, false
	}
	return v.dateVal, true
}

func LocalTimeValue(t LocalTime) *Value { return &Value{kind: KindLocalTime, localTimeVal: t} }
func (v *Value) AsLocalTime() (LocalTime, bool) {
	if v.Kind() != KindLocalTime {
		return LocalTime{}, false
	}
	return v.localTimeVal, true
}

func ZonedTimeValue(t ZonedTime) *Value { return &Value{kind: KindZonedTime, zonedTimeVal: t} }
func (v *Value) AsZonedTime() (ZonedTime, bool) {
	if v.Kind() != KindZonedTime {
		return ZonedTime{}, false
	}
	return v.zonedTimeVal, true
}

func LocalDateTimeValue(dt LocalDateTime) *Value {
	return &Value{kind: KindLocalDateTime, localDateTimeVal: dt}
}
func (v *Value) AsLocalDateTime() (LocalDateTime, bool) {
	if v.Kind() != KindLocalDateTime {
		return LocalDateTime{}, false
	}
	return v.localDateTimeVal, true
}

func ZonedDateTimeValue(dt ZonedDateTime) *Value {
	return &Value{kind: KindZonedDateTime, zonedDateTimeVal: dt}
}
func (v *Value) AsZonedDateTime() (ZonedDateTime, bool) {
	if v.Kind() != KindZonedDateTime {
		return ZonedDateTime{}, false
	}
	return v.zonedDateTimeVal, true
}

func YearMonthDurationValue(d YearMonthDuration) *Value {
	return &Value{kind: KindYearMonthDuration, ymDurationVal: d}
}
func (v *Value) AsYearMonthDuration() (YearMonthDuration, bool) {
	if v.Kind() != KindYearMonthDuration {
		return YearMonthDuration{}, false
	}
	return v.ymDurationVal, true
}

func DayTimeDurationValue(d DayTimeDuration) *Value {
	return &Value{kind: KindDayTimeDuration, dtDurationVal: d}
}
func (v *Value) AsDayTimeDuration() (DayTimeDuration, bool) {
	if v.Kind() != KindDayTimeDuration {
		return DayTimeDuration{}, false
	}
	return v.dtDurationVal, true
}

// List wraps a (possibly heterogeneous) ordered sequence. The slice is
// not copied; callers must not mutate it after handing it to List.
func List(items []*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{kind: KindList, listVal: items}
}

func (v *Value) AsList() ([]*Value, bool) {
	if v.Kind() != KindList {
		return nil, false
	}
	return v.listVal, true
}

func ContextValue(c *Context) *Value { return &Value{kind: KindContext, contextVal: c} }

func (v *Value) AsContext() (*Context, bool) {
	if v.Kind() != KindContext {
		return nil, false
	}
	return v.contextVal, true
}

func RangeValue(r *Range) *Value { return &Value{kind: KindRange, rangeVal: r} }

func (v *Value) AsRange() (*Range, bool) {
	if v.Kind() != KindRange {
		return nil, false
	}
	return v.rangeVal, true
}

func FunctionValue(f *Function) *Value { return &Value{kind: KindFunction, functionVal: f} }

func (v *Value) AsFunction() (*Function, bool) {
	if v.Kind() != KindFunction {
		return nil, false
	}
	return v.functionVal, true
}

// Error constructs a surfaced-failure value (spec.md §3.1, distinct from Null).
func Error(message string) *Value { return &Value{kind: KindError, errorVal: message} }

func (v *Value) AsError() (string, bool) {
	if v.Kind() != KindError {
		return "", false
	}
	return v.errorVal, true
}

// String renders a Value the way the engine prints results: FEEL
// literal syntax where one exists, otherwise a readable fallback.
func (v *Value) String() string {
	if v == nil {
		return "null"
	}
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindNumber:
		return v.numberVal.String()
	case KindString:
		return fmt.Sprintf("%q", v.stringVal)
	case KindDate:
		return v.dateVal.String()
	case KindLocalTime:
		return v.localTimeVal.String()
	case KindZonedTime:
		return v.zonedTimeVal.String()
	case KindLocalDateTime:
		return v.localDateTimeVal.String()
	case KindZonedDateTime:
		return v.zonedDateTimeVal.String()
	case KindYearMonthDuration:
		return v.ymDurationVal.String()
	case KindDayTimeDuration:
		return v.dtDurationVal.String()
	case KindList:
		s := "["
		for i, item := range v.listVal {
			if i > 0 {
				s += ", "
			}
			s += item.String()
		}
		return s + "]"
	case KindContext:
		return v.contextVal.String()
	case KindRange:
		return v.rangeVal.String()
	case KindFunction:
		return "function"
	case KindError:
		return "error(" + v.errorVal + ")"
	default:
		return "?"
	}
}

// IsOrdinal reports whether v belongs to a kind ordering (<, <=, >, >=)
// is defined over (spec.md §4.3.1): Number, String, the temporal kinds,
// and durations within the same family.
func (v *Value) IsOrdinal() bool {
	switch v.Kind() {
	case KindNumber, KindString, KindDate, KindLocalTime, KindZonedTime,
		KindLocalDateTime, KindZonedDateTime, KindYearMonthDuration, KindDayTimeDuration:
		return true
	default:
		return false
	}
}
