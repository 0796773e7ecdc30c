package fluent

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

type NumberStyle string

const (
	NumberStyleDecimal  NumberStyle = "decimal"
	NumberStyleCurrency NumberStyle = "currency"
	NumberStylePercent  NumberStyle = "percent"
)

type NumberNotation string

const (
	NotationStandard    NumberNotation = "standard"
	NotationScientific  NumberNotation = "scientific"
	NotationEngineering NumberNotation = "engineering"
)

type CurrencyDisplay string

const (
	CurrencyDisplaySymbol CurrencyDisplay = "symbol"
	CurrencyDisplayCode   CurrencyDisplay = "code"
	CurrencyDisplayName   CurrencyDisplay = "name"
)

type Grouping string

const (
	GroupingAlways Grouping = "always"
	GroupingAuto   Grouping = "auto"
	GroupingMin2   Grouping = "min2"
	GroupingNever  Grouping = "never"
)

// RoundingMode names the rounding modes defined by ECMA-402.
type RoundingMode string

const (
	RoundingCeil       RoundingMode = "ceil"
	RoundingFloor      RoundingMode = "floor"
	RoundingExpand     RoundingMode = "expand"
	RoundingTrunc      RoundingMode = "trunc"
	RoundingHalfCeil   RoundingMode = "halfCeil"
	RoundingHalfFloor  RoundingMode = "halfFloor"
	RoundingHalfExpand RoundingMode = "halfExpand"
	RoundingHalfTrunc  RoundingMode = "halfTrunc"
	RoundingHalfEven   RoundingMode = "halfEven"
)

// PluralType selects the rule set used when a number picks a variant.
type PluralType string

const (
	PluralCardinal PluralType = "cardinal"
	PluralOrdinal  PluralType = "ordinal"
)

// NumberOptions mirror the Intl.NumberFormat options understood by NUMBER.
// Zero values mean "use the default"; digit bounds are nil when unset.
type NumberOptions struct {
	Style                    NumberStyle
	Notation                 NumberNotation
	Currency                 string
	CurrencyDisplay          CurrencyDisplay
	UseGrouping              Grouping
	RoundingMode             RoundingMode
	Type                     PluralType
	MinimumIntegerDigits     *int
	MinimumFractionDigits    *int
	MaximumFractionDigits    *int
	MinimumSignificantDigits *int
	MaximumSignificantDigits *int
}

func digits(n int) *int {
	return &n
}

// Merge applies named call arguments. Keys it does not know and values of
// the wrong kind are ignored.
func (o *NumberOptions) Merge(named Args) {
	for key, value := range named {
		switch v := value.(type) {
		case StringValue:
			o.mergeString(key, string(v))
		case NumberValue:
			o.mergeNumber(key, v.Value)
		}
	}
}

func (o *NumberOptions) mergeString(key, value string) {
	switch key {
	case "style":
		o.Style = oneOf(NumberStyle(value), NumberStyleDecimal, NumberStyleCurrency, NumberStylePercent)
	case "notation":
		o.Notation = oneOf(NumberNotation(value), NotationStandard, NotationScientific, NotationEngineering)
	case "currency":
		o.Currency = value
	case "currencyDisplay":
		o.CurrencyDisplay = oneOf(CurrencyDisplay(value), CurrencyDisplaySymbol, CurrencyDisplayCode, CurrencyDisplayName)
	case "useGrouping":
		o.UseGrouping = oneOf(Grouping(value), GroupingAuto, GroupingAlways, GroupingMin2, GroupingNever)
	case "roundingMode":
		o.RoundingMode = oneOf(RoundingMode(value),
			RoundingHalfExpand, RoundingCeil, RoundingFloor, RoundingExpand, RoundingTrunc,
			RoundingHalfCeil, RoundingHalfFloor, RoundingHalfTrunc, RoundingHalfEven)
	case "type":
		o.Type = oneOf(PluralType(value), PluralCardinal, PluralOrdinal)
	}
}

// Digit option ranges accepted by Intl.NumberFormat.
const (
	maxIntegerDigits     = 21
	maxFractionDigits    = 100
	maxSignificantDigits = 21
)

// mergeNumber sets a digit option. Values outside the Intl.NumberFormat
// range leave the option unchanged.
func (o *NumberOptions) mergeNumber(key string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return
	}
	inRange := func(lo, hi int) *int {
		if value < float64(lo) || value > float64(hi) {
			return nil
		}
		return digits(int(value))
	}

	switch key {
	case "minimumIntegerDigits":
		if n := inRange(1, maxIntegerDigits); n != nil {
			o.MinimumIntegerDigits = n
		}
	case "minimumFractionDigits":
		if n := inRange(0, maxFractionDigits); n != nil {
			o.MinimumFractionDigits = n
		}
	case "maximumFractionDigits":
		if n := inRange(0, maxFractionDigits); n != nil {
			o.MaximumFractionDigits = n
		}
	case "minimumSignificantDigits":
		if n := inRange(1, maxSignificantDigits); n != nil {
			o.MinimumSignificantDigits = n
		}
	case "maximumSignificantDigits":
		if n := inRange(1, maxSignificantDigits); n != nil {
			o.MaximumSignificantDigits = n
		}
	}
}

// oneOf returns value when it is one of allowed, otherwise allowed[0].
func oneOf[T comparable](value T, allowed ...T) T {
	for _, a := range allowed {
		if a == value {
			return value
		}
	}
	return allowed[0]
}

func (o NumberOptions) rounding() RoundingMode {
	if o.RoundingMode == "" {
		return RoundingHalfExpand
	}
	return o.RoundingMode
}

func (o NumberOptions) grouping() Grouping {
	if o.UseGrouping == "" {
		return GroupingAuto
	}
	return o.UseGrouping
}

func (o NumberOptions) pluralType() PluralType {
	if o.Type == "" {
		return PluralCardinal
	}
	return o.Type
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// decimal shapes the value for standard notation: digit bounds and
// rounding applied, the way it is both displayed and used for plurals.
func (n NumberValue) decimal() decimal {
	return n.shape(0, 3)
}

func (n NumberValue) shape(minFracDefault, maxFracDefault int) decimal {
	opts := n.Options
	d := decimalFromFloat(n.Value)
	if opts.Style == NumberStylePercent {
		d.shift(2)
	}

	if opts.MinimumSignificantDigits != nil || opts.MaximumSignificantDigits != nil {
		minSig := max(intOr(opts.MinimumSignificantDigits, 1), 1)
		maxSig := max(intOr(opts.MaximumSignificantDigits, 21), minSig)
		d.roundSignificant(maxSig, opts.rounding())
		d.trimEnd()
		d.padSignificant(minSig)
	} else {
		minFrac := intOr(opts.MinimumFractionDigits, minFracDefault)
		maxFrac := max(intOr(opts.MaximumFractionDigits, max(minFrac, maxFracDefault)), minFrac)
		d.roundAt(maxFrac, opts.rounding())
		d.trimEnd()
		d.padEnd(minFrac)
	}

	d.padStart(intOr(opts.MinimumIntegerDigits, 1))
	return d
}

// scientific splits the value into mantissa and exponent, the exponent a
// multiple of step.
func (n NumberValue) scientific(step int) (decimal, int) {
	opts := n.Options
	d := decimalFromFloat(n.Value)
	exp := d.magnitude() / step * step
	d.shift(-exp)

	minFrac := intOr(opts.MinimumFractionDigits, 3)
	maxFrac := intOr(opts.MaximumFractionDigits, max(minFrac, 3))
	d.roundAt(maxFrac, opts.rounding())
	d.trimEnd()
	d.padEnd(minFrac)
	return d, exp
}

func (n NumberValue) format(tag language.Tag, cache FormatterCache) (string, error) {
	opts := n.Options
	if math.IsNaN(n.Value) {
		return "NaN", nil
	}
	if math.IsInf(n.Value, 0) {
		if n.Value < 0 {
			return "-∞", nil
		}
		return "∞", nil
	}

	df, err := loadDecimalFormatter(cache, tag, opts.grouping())
	if err != nil {
		return decimalFromFloat(n.Value).String(), err
	}

	switch opts.Notation {
	case NotationScientific, NotationEngineering:
		step := 1
		if opts.Notation == NotationEngineering {
			step = 3
		}
		mantissa, exp := n.scientific(step)
		exponent := decimal{whole: strconv.Itoa(abs(exp))}
		exponent.padStart(intOr(opts.MinimumIntegerDigits, 2))
		sign := "+"
		if exp < 0 {
			sign = "-"
		}
		return df.format(mantissa) + "E" + sign + df.format(exponent), nil
	}

	switch opts.Style {
	case NumberStylePercent:
		return df.percentOf(df.format(n.decimal())), nil
	case NumberStyleCurrency:
		return n.formatCurrency(tag, cache, df)
	default:
		return df.format(n.decimal()), nil
	}
}

func (n NumberValue) formatCurrency(tag language.Tag, cache FormatterCache, df *decimalFormatter) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(n.Options.Currency))
	if code == "" {
		return df.format(n.decimal()), newError(ErrFormatterConstruction, "currency style without currency code")
	}

	cf, err := loadCurrencyFormatter(cache, tag, code, n.Options.CurrencyDisplay)
	if err != nil {
		return code + " " + df.format(n.decimal()), err
	}
	d := n.shape(cf.scale, cf.scale)
	neg := d.neg
	d.neg = false
	text := cf.decorate(df.format(d))
	if neg {
		text = "-" + text
	}
	return text, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
