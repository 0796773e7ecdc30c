// Command fluent-cldr generates the calendar tables used for DATETIME
// formatting from a CLDR core data directory.
//
//	fluent-cldr -cldr ./cldr/common -locale en,en-GB,de -out formatters_cldr_data.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type calendarPayload struct {
	Locale          string
	Months          [12]string
	MonthsShort     [12]string
	Weekdays        [7]string
	WeekdaysShort   [7]string
	DayPeriods      [2]string
	DateFormats     [4]string
	TimeFormats     [2]string
	DateTimeFormats [4]string
	GMTFormat       string
	GMTZeroFormat   string
}

// Style lengths in the order the runtime indexes them.
var (
	dateLengths = []string{"full", "long", "medium", "short"}
	timeLengths = []string{"medium", "short"}
	weekdayKeys = []string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}
)

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "fluent-cldr: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "fluent", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "formatters_cldr_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects a main/ subdirectory)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or pass a comma separated list.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}
	for _, locale := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(locale, "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}
	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var calendars []calendarPayload
	for _, locale := range cfg.locales {
		payload, err := buildCalendar(data, locale)
		if err != nil {
			return fmt.Errorf("build calendar for %s: %w", locale, err)
		}
		calendars = append(calendars, payload)
	}

	sort.Slice(calendars, func(i, j int) bool {
		return calendars[i].Locale < calendars[j].Locale
	})

	source, err := renderSource(cfg.pkg, calendars)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}
	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

// findLDML returns the resolved LDML for locale, trimming subtags until a
// match is found.
func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	candidate := strings.ReplaceAll(locale, "-", "_")
	for candidate != "" {
		if ldml, err := data.LDML(candidate); err == nil && ldml != nil {
			return ldml
		}
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		idx := strings.LastIndex(candidate, "_")
		if idx < 0 {
			break
		}
		candidate = candidate[:idx]
	}
	return data.RawLDML("root")
}

func buildCalendar(data *cldr.CLDR, locale string) (calendarPayload, error) {
	payload := calendarPayload{Locale: locale}

	ldml := findLDML(data, locale)
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return payload, errors.New("missing dates data")
	}

	var cal *cldr.Calendar
	for _, c := range ldml.Dates.Calendars.Calendar {
		if c != nil && c.Type == "gregorian" {
			cal = c
			break
		}
	}
	if cal == nil {
		return payload, errors.New("missing gregorian calendar")
	}

	extractMonths(cal, &payload)
	extractDays(cal, &payload)
	extractDayPeriods(cal, &payload)
	extractPatterns(cal, &payload)
	extractZoneFormats(ldml, &payload)

	if payload.Months[0] == "" || payload.DateFormats[2] == "" {
		return payload, errors.New("incomplete gregorian calendar")
	}
	return payload, nil
}

func extractMonths(cal *cldr.Calendar, payload *calendarPayload) {
	if cal.Months == nil {
		return
	}
	for _, ctx := range cal.Months.MonthContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, width := range ctx.MonthWidth {
			if width == nil {
				continue
			}
			var target *[12]string
			switch width.Type {
			case "wide":
				target = &payload.Months
			case "abbreviated":
				target = &payload.MonthsShort
			default:
				continue
			}
			for _, month := range width.Month {
				if month == nil || month.Alt != "" {
					continue
				}
				idx, err := strconv.Atoi(month.Type)
				if err != nil || idx < 1 || idx > 12 {
					continue
				}
				target[idx-1] = month.Data()
			}
		}
	}
}

func extractDays(cal *cldr.Calendar, payload *calendarPayload) {
	if cal.Days == nil {
		return
	}
	for _, ctx := range cal.Days.DayContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, width := range ctx.DayWidth {
			if width == nil {
				continue
			}
			var target *[7]string
			switch width.Type {
			case "wide":
				target = &payload.Weekdays
			case "abbreviated":
				target = &payload.WeekdaysShort
			default:
				continue
			}
			for _, day := range width.Day {
				if day == nil || day.Alt != "" {
					continue
				}
				for i, key := range weekdayKeys {
					if day.Type == key {
						target[i] = day.Data()
					}
				}
			}
		}
	}
}

func extractDayPeriods(cal *cldr.Calendar, payload *calendarPayload) {
	payload.DayPeriods = [2]string{"AM", "PM"}
	if cal.DayPeriods == nil {
		return
	}
	for _, ctx := range cal.DayPeriods.DayPeriodContext {
		if ctx == nil || ctx.Type != "format" {
			continue
		}
		for _, width := range ctx.DayPeriodWidth {
			if width == nil || width.Type != "abbreviated" {
				continue
			}
			for _, period := range width.DayPeriod {
				if period == nil || period.Alt != "" {
					continue
				}
				switch period.Type {
				case "am":
					payload.DayPeriods[0] = period.Data()
				case "pm":
					payload.DayPeriods[1] = period.Data()
				}
			}
		}
	}
}

func extractPatterns(cal *cldr.Calendar, payload *calendarPayload) {
	if cal.DateFormats != nil {
		for _, length := range cal.DateFormats.DateFormatLength {
			if length == nil {
				continue
			}
			idx := indexOf(dateLengths, length.Type)
			if idx < 0 {
				continue
			}
			for _, f := range length.DateFormat {
				if f == nil {
					continue
				}
				for _, p := range f.Pattern {
					if p != nil && p.Alt == "" {
						payload.DateFormats[idx] = p.Data()
					}
				}
			}
		}
	}

	if cal.TimeFormats != nil {
		for _, length := range cal.TimeFormats.TimeFormatLength {
			if length == nil {
				continue
			}
			idx := indexOf(timeLengths, length.Type)
			if idx < 0 {
				continue
			}
			for _, f := range length.TimeFormat {
				if f == nil {
					continue
				}
				for _, p := range f.Pattern {
					if p != nil && p.Alt == "" {
						payload.TimeFormats[idx] = p.Data()
					}
				}
			}
		}
	}

	if cal.DateTimeFormats != nil {
		for _, length := range cal.DateTimeFormats.DateTimeFormatLength {
			if length == nil {
				continue
			}
			idx := indexOf(dateLengths, length.Type)
			if idx < 0 {
				continue
			}
			for _, f := range length.DateTimeFormat {
				if f == nil {
					continue
				}
				for _, p := range f.Pattern {
					if p != nil && p.Alt == "" && payload.DateTimeFormats[idx] == "" {
						payload.DateTimeFormats[idx] = p.Data()
					}
				}
			}
		}
	}
	for i, glue := range payload.DateTimeFormats {
		if glue == "" {
			payload.DateTimeFormats[i] = "{1} {0}"
		}
	}
}

func extractZoneFormats(ldml *cldr.LDML, payload *calendarPayload) {
	payload.GMTFormat = "GMT{0}"
	payload.GMTZeroFormat = "GMT"

	zones := ldml.Dates.TimeZoneNames
	if zones == nil {
		return
	}
	for _, f := range zones.GmtFormat {
		if f != nil && f.Data() != "" {
			payload.GMTFormat = f.Data()
		}
	}
	for _, f := range zones.GmtZeroFormat {
		if f != nil && f.Data() != "" {
			payload.GMTZeroFormat = f.Data()
		}
	}
}

func indexOf(list []string, value string) int {
	for i, item := range list {
		if item == value {
			return i
		}
	}
	return -1
}

func renderSource(pkg string, calendars []calendarPayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by fluent-cldr. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("type cldrCalendar struct {\n")
	buf.WriteString("\tMonths          [12]string\n")
	buf.WriteString("\tMonthsShort     [12]string\n")
	buf.WriteString("\tWeekdays        [7]string\n")
	buf.WriteString("\tWeekdaysShort   [7]string\n")
	buf.WriteString("\tDayPeriods      [2]string\n")
	buf.WriteString("\tDateFormats     [4]string\n")
	buf.WriteString("\tTimeFormats     [2]string\n")
	buf.WriteString("\tDateTimeFormats [4]string\n")
	buf.WriteString("\tGMTFormat       string\n")
	buf.WriteString("\tGMTZeroFormat   string\n")
	buf.WriteString("}\n\n")

	buf.WriteString("var cldrCalendars = map[string]cldrCalendar{\n")
	for _, cal := range calendars {
		fmt.Fprintf(&buf, "\t%q: {\n", cal.Locale)
		fmt.Fprintf(&buf, "\t\tMonths: [12]string{%s},\n", quoteAll(cal.Months[:]))
		fmt.Fprintf(&buf, "\t\tMonthsShort: [12]string{%s},\n", quoteAll(cal.MonthsShort[:]))
		fmt.Fprintf(&buf, "\t\tWeekdays: [7]string{%s},\n", quoteAll(cal.Weekdays[:]))
		fmt.Fprintf(&buf, "\t\tWeekdaysShort: [7]string{%s},\n", quoteAll(cal.WeekdaysShort[:]))
		fmt.Fprintf(&buf, "\t\tDayPeriods: [2]string{%s},\n", quoteAll(cal.DayPeriods[:]))
		fmt.Fprintf(&buf, "\t\tDateFormats: [4]string{%s},\n", quoteAll(cal.DateFormats[:]))
		fmt.Fprintf(&buf, "\t\tTimeFormats: [2]string{%s},\n", quoteAll(cal.TimeFormats[:]))
		fmt.Fprintf(&buf, "\t\tDateTimeFormats: [4]string{%s},\n", quoteAll(cal.DateTimeFormats[:]))
		fmt.Fprintf(&buf, "\t\tGMTFormat: %q,\n", cal.GMTFormat)
		fmt.Fprintf(&buf, "\t\tGMTZeroFormat: %q,\n", cal.GMTZeroFormat)
		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n\n")

	buf.WriteString("var generatedCLDRLocales = []string{\n")
	for _, cal := range calendars {
		fmt.Fprintf(&buf, "\t%q,\n", cal.Locale)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// GeneratedCLDRLocales lists the locales with bundled calendar data.\n")
	buf.WriteString("func GeneratedCLDRLocales() []string {\n")
	buf.WriteString("\treturn append([]string{}, generatedCLDRLocales...)\n")
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = strconv.Quote(item)
	}
	return strings.Join(quoted, ", ")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
