package fluent

import (
	"strings"
	"time"
)

// renderDatePattern writes t using a CLDR date/time pattern. Quoted text is
// copied literally and '' stands for a single quote.
func renderDatePattern(pattern string, t time.Time, cal *cldrCalendar) string {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			for j < len(runes) {
				if runes[j] == '\'' {
					if j+1 < len(runes) && runes[j+1] == '\'' {
						b.WriteRune('\'')
						j += 2
						continue
					}
					break
				}
				b.WriteRune(runes[j])
				j++
			}
			i = j + 1
			continue
		}

		if !isPatternLetter(r) {
			b.WriteRune(r)
			i++
			continue
		}

		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		writeDateField(&b, r, j-i, t, cal)
		i = j
	}

	return b.String()
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func writeDateField(b *strings.Builder, letter rune, count int, t time.Time, cal *cldrCalendar) {
	switch letter {
	case 'G':
		if t.Year() > 0 {
			b.WriteString("AD")
		} else {
			b.WriteString("BC")
		}
	case 'y':
		if count == 2 {
			b.WriteString(pad(t.Year()%100, 2))
		} else {
			b.WriteString(pad(t.Year(), count))
		}
	case 'M', 'L':
		month := int(t.Month())
		switch {
		case count >= 4:
			b.WriteString(cal.Months[month-1])
		case count == 3:
			b.WriteString(cal.MonthsShort[month-1])
		default:
			b.WriteString(pad(month, count))
		}
	case 'd':
		b.WriteString(pad(t.Day(), count))
	case 'E':
		if count >= 4 {
			b.WriteString(cal.Weekdays[t.Weekday()])
		} else {
			b.WriteString(cal.WeekdaysShort[t.Weekday()])
		}
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		b.WriteString(pad(hour, count))
	case 'H':
		b.WriteString(pad(t.Hour(), count))
	case 'm':
		b.WriteString(pad(t.Minute(), count))
	case 's':
		b.WriteString(pad(t.Second(), count))
	case 'a':
		if t.Hour() >= 12 {
			b.WriteString(cal.DayPeriods[1])
		} else {
			b.WriteString(cal.DayPeriods[0])
		}
	case 'z', 'Z', 'O', 'v', 'V', 'X', 'x':
		_, offset := t.Zone()
		b.WriteString(localizedGMT(offset, cal))
	default:
		b.WriteString(strings.Repeat(string(letter), count))
	}
}

