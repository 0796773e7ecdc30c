package fluent

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value is the runtime value of an expression. The set of implementations is
// closed: StringValue, NumberValue, DateTimeValue, ErrorValue and NoneValue.
type Value interface {
	fluentValue()
}

type StringValue string

// NumberValue is a number with the options that control how it is written
// and how it selects plural variants.
type NumberValue struct {
	Value   float64
	Options NumberOptions
}

// DateTimeValue is an instant in the time zone carried by its time.Time.
type DateTimeValue struct {
	Value   time.Time
	Options DateTimeOptions
}

// ErrorValue marks a failed sub expression. It renders as empty text; the
// diagnostic is recorded where the value was produced.
type ErrorValue struct{}

// NoneValue is an absent value.
type NoneValue struct{}

func (StringValue) fluentValue()   {}
func (NumberValue) fluentValue()   {}
func (DateTimeValue) fluentValue() {}
func (ErrorValue) fluentValue()    {}
func (NoneValue) fluentValue()     {}

func String(s string) StringValue {
	return StringValue(s)
}

func Number(v float64) NumberValue {
	return NumberValue{Value: v}
}

// NumberFromString parses a numeric literal. The count of fraction digits
// written in s becomes the minimum fraction digits, so "1.0" and "1" format
// and select differently.
func NumberFromString(s string) (NumberValue, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return NumberValue{}, fmt.Errorf("fluent: parse number %q: %w", s, err)
	}
	n := NumberValue{Value: v}

	// Only digits written after the point count. An exponent moves them.
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(lower, "0x") {
		return n, nil
	}
	mantissa, exponent, hasExponent := strings.Cut(lower, "e")
	if idx := strings.IndexByte(mantissa, '.'); idx >= 0 {
		frac := len(mantissa) - idx - 1
		if hasExponent {
			e, err := strconv.Atoi(exponent)
			if err != nil {
				e = 0
			}
			frac -= max(min(e, maxFractionDigits), -maxFractionDigits)
		}
		n.Options.MinimumFractionDigits = digits(min(max(frac, 0), maxFractionDigits))
	}
	return n, nil
}

func DateTime(t time.Time) DateTimeValue {
	return DateTimeValue{Value: t}
}

// Args are the named arguments of a formatting call.
type Args map[string]Value

func NewArgs() Args {
	return make(Args)
}

// Set stores value under name, replacing any previous value.
func (a Args) Set(name string, value Value) Args {
	a[name] = value
	return a
}

func (a Args) Get(name string) (Value, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a[name]
	return v, ok
}

// ArgsFrom converts plain Go values. Values of unsupported types are skipped.
func ArgsFrom(values map[string]any) Args {
	args := make(Args, len(values))
	for name, raw := range values {
		if v := ValueOf(raw); v != nil {
			args[strings.TrimSpace(name)] = v
		}
	}
	return args
}

// ValueOf wraps a Go value, returning nil for unsupported types.
func ValueOf(raw any) Value {
	switch v := raw.(type) {
	case Value:
		return v
	case string:
		return StringValue(v)
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int8:
		return Number(float64(v))
	case int16:
		return Number(float64(v))
	case int32:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case uint:
		return Number(float64(v))
	case uint8:
		return Number(float64(v))
	case uint16:
		return Number(float64(v))
	case uint32:
		return Number(float64(v))
	case uint64:
		return Number(float64(v))
	case time.Time:
		return DateTime(v)
	case *time.Time:
		if v == nil {
			return NoneValue{}
		}
		return DateTime(*v)
	case nil:
		return NoneValue{}
	case fmt.Stringer:
		return StringValue(v.String())
	default:
		return nil
	}
}
