package fluent

import (
	"strings"
	"unicode"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// decimalFormatter writes shaped decimals with locale symbols. The symbols
// are read back from golang.org/x/text output once per locale and grouping.
type decimalFormatter struct {
	zero        rune
	decimalSep  string
	groupSep    string
	primary     int
	secondary   int
	minGrouping int
	grouping    Grouping
	percent     string
}

// minimumGroupingDigits lists locales whose CLDR data only groups four
// digit integers when the top group would hold at least two digits.
var minimumGroupingDigits = map[string]int{
	"es":    2,
	"pl":    2,
	"pt-PT": 2,
}

func loadDecimalFormatter(cache FormatterCache, tag language.Tag, grouping Grouping) (*decimalFormatter, error) {
	key := FormatterKey{Family: FamilyDecimal, Locale: tag.String(), Options: string(grouping)}
	return loadFormatter(cache, key, func() (*decimalFormatter, error) {
		return newDecimalFormatter(tag, grouping)
	})
}

func newDecimalFormatter(tag language.Tag, grouping Grouping) (*decimalFormatter, error) {
	printer := message.NewPrinter(tag)
	sample := printer.Sprintf("%v", number.Decimal(1234567890.5,
		number.MinFractionDigits(1), number.MaxFractionDigits(1)))

	runs, seps := splitDigitRuns(sample)
	if len(runs) < 2 || len(seps) < len(runs)-1 {
		return nil, newError(ErrFormatterConstruction, "decimal symbols for "+tag.String())
	}

	first := []rune(runs[0])
	f := &decimalFormatter{
		zero:        first[0] - 1,
		decimalSep:  seps[len(runs)-2],
		grouping:    grouping,
		minGrouping: 1,
		percent:     "{0}%",
	}

	whole := runs[:len(runs)-1]
	if len(whole) > 1 {
		f.groupSep = seps[0]
		f.primary = len([]rune(whole[len(whole)-1]))
		f.secondary = f.primary
		if len(whole) > 2 {
			f.secondary = len([]rune(whole[len(whole)-2]))
		}
	}

	for _, candidate := range localeCandidates(tag.String()) {
		if n, ok := minimumGroupingDigits[candidate]; ok {
			f.minGrouping = n
			break
		}
	}

	pct := printer.Sprintf("%v", number.Percent(0.25))
	if native := string(f.zero+2) + string(f.zero+5); strings.Contains(pct, native) {
		f.percent = strings.Replace(pct, native, "{0}", 1)
	}

	return f, nil
}

// splitDigitRuns splits s into runs of digits and the separators between
// them. Text before the first digit is dropped.
func splitDigitRuns(s string) (runs []string, seps []string) {
	var run, sep strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			if sep.Len() > 0 && len(runs) > 0 {
				seps = append(seps, sep.String())
			}
			sep.Reset()
			run.WriteRune(r)
			continue
		}
		if run.Len() > 0 {
			runs = append(runs, run.String())
			run.Reset()
		}
		if len(runs) > 0 {
			sep.WriteRune(r)
		}
	}
	if run.Len() > 0 {
		runs = append(runs, run.String())
	}
	return runs, seps
}

func (f *decimalFormatter) format(d decimal) string {
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(f.native(f.group(d.whole)))
	if d.frac != "" {
		b.WriteString(f.decimalSep)
		b.WriteString(f.native(d.frac))
	}
	return b.String()
}

func (f *decimalFormatter) percentOf(formatted string) string {
	return strings.Replace(f.percent, "{0}", formatted, 1)
}

func (f *decimalFormatter) group(whole string) string {
	if f.groupSep == "" || f.primary == 0 || f.grouping == GroupingNever {
		return whole
	}

	minTop := 1
	switch f.grouping {
	case GroupingMin2:
		minTop = 2
	case GroupingAuto:
		minTop = f.minGrouping
	}
	if len(whole) < f.primary+minTop {
		return whole
	}

	var parts []string
	rest, size := whole, f.primary
	for len(rest) > size {
		parts = append(parts, rest[len(rest)-size:])
		rest = rest[:len(rest)-size]
		size = f.secondary
	}
	parts = append(parts, rest)

	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		b.WriteString(parts[i])
		if i > 0 {
			b.WriteString(f.groupSep)
		}
	}
	return b.String()
}

// native maps ASCII digits onto the locale digit set, leaving every other
// byte as is.
func (f *decimalFormatter) native(ascii string) string {
	if f.zero == '0' {
		return ascii
	}
	var b strings.Builder
	for _, r := range ascii {
		if r >= '0' && r <= '9' {
			r = f.zero + (r - '0')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// nbsp joins a currency label and its amount.
const nbsp = "\u00a0"

type currencyFormatter struct {
	label  string
	scale  int
	suffix bool
}

// currencySuffixLocales place the currency label after the amount.
var currencySuffixLocales = map[string]bool{
	"bg": true, "cs": true, "de": true, "es": true, "fi": true, "fr": true,
	"hu": true, "it": true, "lt": true, "lv": true, "pl": true, "pt-PT": true,
	"ro": true, "ru": true, "sk": true, "sv": true, "uk": true,
}

func loadCurrencyFormatter(cache FormatterCache, tag language.Tag, code string, display CurrencyDisplay) (*currencyFormatter, error) {
	key := FormatterKey{Family: FamilyCurrency, Locale: tag.String(), Options: code + "/" + string(display)}
	return loadFormatter(cache, key, func() (*currencyFormatter, error) {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return nil, newError(ErrFormatterConstruction, "currency "+code)
		}
		scale, _ := currency.Standard.Rounding(unit)
		return &currencyFormatter{
			label:  currencyLabel(tag, unit, display),
			scale:  scale,
			suffix: currencyAfterAmount(tag),
		}, nil
	})
}

func currencyLabel(tag language.Tag, unit currency.Unit, display CurrencyDisplay) string {
	if display == CurrencyDisplayCode || display == CurrencyDisplayName {
		return unit.String()
	}

	symbol := strings.TrimSpace(message.NewPrinter(tag).Sprintf("%v", currency.Symbol(unit)))
	if symbol == "" || symbol == unit.String() {
		english := message.NewPrinter(language.English)
		symbol = strings.TrimSpace(english.Sprintf("%v", currency.Symbol(unit)))
	}
	if symbol == "" {
		symbol = unit.String()
	}
	return symbol
}

func currencyAfterAmount(tag language.Tag) bool {
	for _, candidate := range localeCandidates(tag.String()) {
		if suffix, ok := currencySuffixLocales[candidate]; ok {
			return suffix
		}
	}
	return false
}

func (cf *currencyFormatter) decorate(amount string) string {
	if cf.suffix {
		return amount + nbsp + cf.label
	}
	if isLetters(cf.label) {
		return cf.label + nbsp + amount
	}
	return cf.label + amount
}

func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) || r > unicode.MaxASCII {
			return false
		}
	}
	return s != ""
}
