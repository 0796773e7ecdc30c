package fluent

import "time"

func builtinFunctions() map[string]Function {
	return map[string]Function{
		"NUMBER":   NumberFunction,
		"DATETIME": DateTimeFunction,
	}
}

// NumberFunction implements NUMBER. It takes one number, or a string holding
// a numeric literal, and applies the named options to it.
func NumberFunction(positional []Value, named Args) Value {
	if len(positional) != 1 {
		return ErrorValue{}
	}

	switch v := positional[0].(type) {
	case NumberValue:
		v.Options.Merge(named)
		return v
	case StringValue:
		n, err := NumberFromString(string(v))
		if err != nil {
			return ErrorValue{}
		}
		n.Options.Merge(named)
		return n
	default:
		return ErrorValue{}
	}
}

// DateTimeFunction implements DATETIME. It takes one datetime, or an RFC 3339
// string, and applies dateStyle, timeStyle and timezoneStyle.
func DateTimeFunction(positional []Value, named Args) Value {
	if len(positional) != 1 {
		return ErrorValue{}
	}

	switch v := positional[0].(type) {
	case DateTimeValue:
		v.Options.Merge(named)
		return v
	case StringValue:
		t, err := time.Parse(time.RFC3339, string(v))
		if err != nil {
			return ErrorValue{}
		}
		dt := DateTime(t)
		dt.Options.Merge(named)
		return dt
	default:
		return ErrorValue{}
	}
}
