package fluent

import (
	"strconv"
	"strings"
)

// decimal is a base 10 fixed point number kept as digit strings so that
// rounding, padding and plural operands work on the written digits rather
// than on binary floating point.
type decimal struct {
	neg   bool
	whole string // integer digits, at least "0"
	frac  string // fraction digits, may be empty
}

func decimalFromFloat(v float64) decimal {
	return parseDecimal(strconv.FormatFloat(v, 'f', -1, 64))
}

// parseDecimal reads a plain decimal literal such as "-12.50". It does not
// validate; callers pass strconv output or literals already checked by
// strconv.ParseFloat.
func parseDecimal(s string) decimal {
	var d decimal
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "-"):
		d.neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	d.whole = whole
	d.frac = frac
	d.trimStart()
	return d
}

func (d *decimal) trimStart() {
	d.whole = strings.TrimLeft(d.whole, "0")
	if d.whole == "" {
		d.whole = "0"
	}
}

func (d *decimal) trimEnd() {
	d.frac = strings.TrimRight(d.frac, "0")
}

func (d *decimal) padStart(minWhole int) {
	if n := minWhole - len(d.whole); n > 0 {
		d.whole = strings.Repeat("0", n) + d.whole
	}
}

func (d *decimal) padEnd(minFrac int) {
	if n := minFrac - len(d.frac); n > 0 {
		d.frac += strings.Repeat("0", n)
	}
}

func (d decimal) isZero() bool {
	return strings.Trim(d.whole, "0") == "" && strings.Trim(d.frac, "0") == ""
}

// magnitude is the power of ten of the most significant non zero digit.
func (d decimal) magnitude() int {
	if w := strings.TrimLeft(d.whole, "0"); w != "" {
		return len(w) - 1
	}
	if i := strings.IndexFunc(d.frac, func(r rune) bool { return r != '0' }); i >= 0 {
		return -(i + 1)
	}
	return 0
}

// shift multiplies the number by 10^n.
func (d *decimal) shift(n int) {
	if n == 0 {
		return
	}
	all := d.whole + d.frac
	point := len(d.whole) + n
	switch {
	case point <= 0:
		d.whole = "0"
		d.frac = strings.Repeat("0", -point) + all
	case point >= len(all):
		d.whole = all + strings.Repeat("0", point-len(all))
		d.frac = ""
	default:
		d.whole = all[:point]
		d.frac = all[point:]
	}
	d.trimStart()
}

// roundAt rounds to pos fraction digits. A negative pos rounds inside the
// integer part.
func (d *decimal) roundAt(pos int, mode RoundingMode) {
	all := d.whole + d.frac
	cut := len(d.whole) + pos
	if cut >= len(all) {
		return
	}

	var kept, rest string
	if cut <= 0 {
		rest = strings.Repeat("0", -cut) + all
	} else {
		kept, rest = all[:cut], all[cut:]
	}

	if roundsUp(mode, d.neg, lastDigit(kept), rest) {
		kept = incrementDigits(kept)
	}

	if pos >= 0 {
		wholeLen := len(kept) - pos
		if wholeLen <= 0 {
			d.whole = "0"
			d.frac = strings.Repeat("0", -wholeLen) + kept
		} else {
			d.whole = kept[:wholeLen]
			d.frac = kept[wholeLen:]
		}
	} else {
		d.whole = kept + strings.Repeat("0", -pos)
		d.frac = ""
	}
	d.trimStart()
}

// roundSignificant keeps at most maxSig significant digits.
func (d *decimal) roundSignificant(maxSig int, mode RoundingMode) {
	if maxSig < 1 {
		maxSig = 1
	}
	d.roundAt(maxSig-1-d.magnitude(), mode)
}

// padSignificant appends fraction zeros until minSig digits are shown.
func (d *decimal) padSignificant(minSig int) {
	mag := d.magnitude()
	if d.isZero() {
		mag = 0
	}
	d.padEnd(minSig - 1 - mag)
}

func lastDigit(digits string) byte {
	if digits == "" {
		return '0'
	}
	return digits[len(digits)-1]
}

func incrementDigits(digits string) string {
	if digits == "" {
		return "1"
	}
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

func roundsUp(mode RoundingMode, neg bool, last byte, rest string) bool {
	if strings.Trim(rest, "0") == "" {
		return false
	}

	switch mode {
	case RoundingCeil:
		return !neg
	case RoundingFloor:
		return neg
	case RoundingExpand:
		return true
	case RoundingTrunc:
		return false
	}

	half := compareHalf(rest)
	if half != 0 {
		return half > 0
	}

	switch mode {
	case RoundingHalfCeil:
		return !neg
	case RoundingHalfFloor:
		return neg
	case RoundingHalfTrunc:
		return false
	case RoundingHalfEven:
		return (last-'0')%2 == 1
	default:
		return true
	}
}

// compareHalf reports whether the discarded digits are below (-1), exactly
// at (0) or above (1) one half of the last kept unit.
func compareHalf(rest string) int {
	switch {
	case rest[0] > '5':
		return 1
	case rest[0] < '5':
		return -1
	case strings.Trim(rest[1:], "0") == "":
		return 0
	default:
		return 1
	}
}

func (d decimal) String() string {
	var b strings.Builder
	if d.neg {
		b.WriteByte('-')
	}
	b.WriteString(d.whole)
	if d.frac != "" {
		b.WriteByte('.')
		b.WriteString(d.frac)
	}
	return b.String()
}

// operands returns the CLDR plural operands i, v, w, f and t.
func (d decimal) operands() (i, v, w, f, t int) {
	i = digitsToInt(d.whole)
	v = len(d.frac)
	trimmed := strings.TrimRight(d.frac, "0")
	w = len(trimmed)
	f = digitsToInt(d.frac)
	t = digitsToInt(trimmed)
	return
}

// digitsToInt keeps the low order digits when the value does not fit; plural
// rules only look at small moduli and ranges.
func digitsToInt(digits string) int {
	if digits == "" {
		return 0
	}
	if len(digits) > 18 {
		digits = digits[len(digits)-9:]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
