package fluent

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DateTimeStyle is the length of the date or time part of a formatted
// instant. StyleHidden leaves the part out.
type DateTimeStyle string

const (
	StyleFull   DateTimeStyle = "full"
	StyleLong   DateTimeStyle = "long"
	StyleMedium DateTimeStyle = "medium"
	StyleShort  DateTimeStyle = "short"
	StyleHidden DateTimeStyle = "hidden"
)

// TimeZoneStyle selects how the UTC offset is written.
type TimeZoneStyle string

const (
	ZoneHidden      TimeZoneStyle = "hidden"
	ZoneGMT         TimeZoneStyle = "gmt"
	ZoneBasic       TimeZoneStyle = "basic"
	ZoneExtended    TimeZoneStyle = "extended"
	ZoneUTCBasic    TimeZoneStyle = "utcBasic"
	ZoneUTCExtended TimeZoneStyle = "utcExtended"
)

// DateTimeOptions control DATETIME output. Zero values mean medium date,
// medium time and no zone.
type DateTimeOptions struct {
	DateStyle     DateTimeStyle
	TimeStyle     DateTimeStyle
	TimeZoneStyle TimeZoneStyle
}

// Merge applies the dateStyle, timeStyle and timezoneStyle named arguments.
// An unrecognised value resets the option to its default.
func (o *DateTimeOptions) Merge(named Args) {
	for key, value := range named {
		s, ok := value.(StringValue)
		if !ok {
			continue
		}
		switch key {
		case "dateStyle":
			o.DateStyle = oneOf(DateTimeStyle(s), StyleMedium, StyleFull, StyleLong, StyleShort, StyleHidden)
		case "timeStyle":
			o.TimeStyle = oneOf(DateTimeStyle(s), StyleMedium, StyleFull, StyleLong, StyleShort, StyleHidden)
		case "timezoneStyle":
			o.TimeZoneStyle = oneOf(TimeZoneStyle(s), ZoneHidden, ZoneGMT, ZoneBasic, ZoneExtended, ZoneUTCBasic, ZoneUTCExtended)
		}
	}
}

func (o DateTimeOptions) dateStyle() DateTimeStyle {
	if o.DateStyle == "" {
		return StyleMedium
	}
	return o.DateStyle
}

func (o DateTimeOptions) timeStyle() DateTimeStyle {
	if o.TimeStyle == "" {
		return StyleMedium
	}
	return o.TimeStyle
}

func (o DateTimeOptions) zoneStyle() TimeZoneStyle {
	if o.TimeZoneStyle == "" {
		return ZoneHidden
	}
	return o.TimeZoneStyle
}

type dateTimeKind int

const (
	kindDate dateTimeKind = iota + 1
	kindTime
	kindDateTime
	kindZonedDateTime
	kindTimeZone
)

func (k dateTimeKind) family() FormatterFamily {
	switch k {
	case kindDate:
		return FamilyDate
	case kindTime:
		return FamilyTime
	case kindDateTime:
		return FamilyDateTime
	case kindZonedDateTime:
		return FamilyZonedDateTime
	default:
		return FamilyTimeZone
	}
}

// selectDateTimeKind picks the formatter kind from which parts are shown.
// A zone with only one of date or time still uses the zoned formatter.
func selectDateTimeKind(date, tm DateTimeStyle, zone TimeZoneStyle) (dateTimeKind, bool) {
	hasDate, hasTime, hasZone := date != StyleHidden, tm != StyleHidden, zone != ZoneHidden
	switch {
	case hasZone && (hasDate || hasTime):
		return kindZonedDateTime, true
	case hasZone:
		return kindTimeZone, true
	case hasDate && hasTime:
		return kindDateTime, true
	case hasDate:
		return kindDate, true
	case hasTime:
		return kindTime, true
	default:
		return 0, false
	}
}

type dateTimeFormatter struct {
	kind     dateTimeKind
	calendar *cldrCalendar
	pattern  string
	zone     TimeZoneStyle
}

func loadDateTimeFormatter(cache FormatterCache, tag language.Tag, opts DateTimeOptions) (*dateTimeFormatter, error) {
	date, tm, zone := opts.dateStyle(), downgradeTimeStyle(opts.timeStyle()), opts.zoneStyle()
	kind, ok := selectDateTimeKind(date, tm, zone)
	if !ok {
		return nil, newError(ErrFormatterConstruction, "datetime with every part hidden")
	}

	key := FormatterKey{
		Family:  kind.family(),
		Locale:  tag.String(),
		Options: string(date) + "/" + string(tm) + "/" + string(zone),
	}
	return loadFormatter(cache, key, func() (*dateTimeFormatter, error) {
		cal := lookupCalendar(tag)
		f := &dateTimeFormatter{kind: kind, calendar: cal, zone: zone}

		var datePattern, timePattern string
		if date != StyleHidden {
			datePattern = cal.DateFormats[styleIndex(date)]
		}
		if tm != StyleHidden {
			timePattern = cal.TimeFormats[styleIndex(tm)-2]
		}

		switch {
		case datePattern != "" && timePattern != "":
			glue := cal.DateTimeFormats[styleIndex(date)]
			f.pattern = strings.NewReplacer("{1}", datePattern, "{0}", timePattern).Replace(glue)
		case datePattern != "":
			f.pattern = datePattern
		default:
			f.pattern = timePattern
		}
		return f, nil
	})
}

// downgradeTimeStyle collapses full and long time styles to medium. Only
// medium and short time patterns are carried.
func downgradeTimeStyle(style DateTimeStyle) DateTimeStyle {
	if style == StyleFull || style == StyleLong {
		return StyleMedium
	}
	return style
}

func styleIndex(style DateTimeStyle) int {
	switch style {
	case StyleFull:
		return 0
	case StyleLong:
		return 1
	case StyleShort:
		return 3
	default:
		return 2
	}
}

func lookupCalendar(tag language.Tag) *cldrCalendar {
	for _, candidate := range localeCandidates(tag.String()) {
		if cal, ok := cldrCalendars[candidate]; ok {
			return &cal
		}
	}
	cal := cldrCalendars["en"]
	return &cal
}

func (f *dateTimeFormatter) format(t time.Time) string {
	switch f.kind {
	case kindTimeZone:
		return formatZone(t, f.zone, f.calendar)
	case kindZonedDateTime:
		return renderDatePattern(f.pattern, t, f.calendar) + " " + formatZone(t, f.zone, f.calendar)
	default:
		return renderDatePattern(f.pattern, t, f.calendar)
	}
}

func (v DateTimeValue) format(tag language.Tag, cache FormatterCache) (string, error) {
	f, err := loadDateTimeFormatter(cache, tag, v.Options)
	if err != nil {
		return v.Value.Format(time.RFC3339), err
	}
	if style := v.Options.timeStyle(); style != downgradeTimeStyle(style) {
		return f.format(v.Value), newError(ErrFormatterConstruction, "timeStyle "+string(style)+" rendered as medium")
	}
	return f.format(v.Value), nil
}

func formatZone(t time.Time, style TimeZoneStyle, cal *cldrCalendar) string {
	_, offset := t.Zone()
	switch style {
	case ZoneBasic:
		return isoOffset(offset, false)
	case ZoneExtended:
		return isoOffset(offset, true)
	case ZoneUTCBasic:
		if offset == 0 {
			return "Z"
		}
		return isoOffset(offset, false)
	case ZoneUTCExtended:
		if offset == 0 {
			return "Z"
		}
		return isoOffset(offset, true)
	default:
		return localizedGMT(offset, cal)
	}
}

func localizedGMT(offset int, cal *cldrCalendar) string {
	if offset == 0 {
		return cal.GMTZeroFormat
	}

	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes, seconds := offset/3600, offset%3600/60, offset%60

	value := sign + strconv.Itoa(hours)
	if minutes != 0 || seconds != 0 {
		value += ":" + pad(minutes, 2)
	}
	if seconds != 0 {
		value += ":" + pad(seconds, 2)
	}
	return strings.Replace(cal.GMTFormat, "{0}", value, 1)
}

// isoOffset writes the offset in ISO 8601 form with minutes always present
// and seconds only when non zero.
func isoOffset(offset int, extended bool) string {
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours, minutes, seconds := offset/3600, offset%3600/60, offset%60

	sep := ""
	if extended {
		sep = ":"
	}
	value := sign + pad(hours, 2) + sep + pad(minutes, 2)
	if seconds != 0 {
		value += sep + pad(seconds, 2)
	}
	return value
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return s
}
