package fluent

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var pi = time.Date(2025, time.March, 14, 15, 4, 5, 0, time.UTC)

func TestRenderDatePattern(t *testing.T) {
	en := lookupCalendar(language.English)

	tests := []struct {
		pattern string
		want    string
	}{
		{"y-MM-dd", "2025-03-14"},
		{"yy", "25"},
		{"MMMM d", "March 14"},
		{"EEE, MMM d", "Fri, Mar 14"},
		{"EEEE", "Friday"},
		{"h:mm a", "3:04 PM"},
		{"HH:mm:ss", "15:04:05"},
		{"'at' h", "at 3"},
		{"h 'o''clock'", "3 o'clock"},
		{"''d''", "'14'"},
		{"G y", "AD 2025"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, renderDatePattern(tt.pattern, pi, en))
		})
	}
}

func TestRenderDatePatternMidnightIsTwelve(t *testing.T) {
	en := lookupCalendar(language.English)
	midnight := time.Date(2025, time.March, 14, 0, 30, 0, 0, time.UTC)
	assert.Equal(t, "12:30 AM", renderDatePattern("h:mm a", midnight, en))
}

func TestDateTimeStyles(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		opts   DateTimeOptions
		want   string
	}{
		{"default", "en", DateTimeOptions{}, "Mar 14, 2025, 3:04:05 PM"},
		{"date only", "en", DateTimeOptions{TimeStyle: StyleHidden}, "Mar 14, 2025"},
		{"long date", "en", DateTimeOptions{DateStyle: StyleLong, TimeStyle: StyleHidden}, "March 14, 2025"},
		{"full date", "en", DateTimeOptions{DateStyle: StyleFull, TimeStyle: StyleHidden}, "Friday, March 14, 2025"},
		{"short date", "en", DateTimeOptions{DateStyle: StyleShort, TimeStyle: StyleHidden}, "3/14/25"},
		{"long glue", "en", DateTimeOptions{DateStyle: StyleLong, TimeStyle: StyleShort}, "March 14, 2025 at 3:04 PM"},
		{"time only", "en", DateTimeOptions{DateStyle: StyleHidden}, "3:04:05 PM"},
		{"region falls back", "en-US", DateTimeOptions{TimeStyle: StyleHidden}, "Mar 14, 2025"},
		{"german", "de", DateTimeOptions{}, "14.03.2025, 15:04:05"},
		{"german full", "de", DateTimeOptions{DateStyle: StyleFull, TimeStyle: StyleHidden}, "Freitag, 14. März 2025"},
		{"german long glue", "de", DateTimeOptions{DateStyle: StyleLong, TimeStyle: StyleShort}, "14. März 2025 um 15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := DateTimeValue{Value: pi, Options: tt.opts}
			got, err := v.format(language.MustParse(tt.locale), NewConfinedCache())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateTimeTimeStyleDowngrade(t *testing.T) {
	for _, style := range []DateTimeStyle{StyleFull, StyleLong} {
		t.Run(string(style), func(t *testing.T) {
			v := DateTimeValue{Value: pi, Options: DateTimeOptions{DateStyle: StyleHidden, TimeStyle: style}}
			got, err := v.format(language.English, nil)
			assert.ErrorIs(t, err, ErrFormatterConstruction)
			assert.ErrorContains(t, err, "rendered as medium")
			assert.Equal(t, "3:04:05 PM", got)
		})
	}

	v := DateTimeValue{Value: pi, Options: DateTimeOptions{DateStyle: StyleLong, TimeStyle: StyleFull}}
	got, err := v.format(language.English, nil)
	assert.ErrorIs(t, err, ErrFormatterConstruction)
	assert.Equal(t, "March 14, 2025 at 3:04:05 PM", got)
}

func TestDateTimeDowngradeIsDiagnostic(t *testing.T) {
	b := NewBundle([]language.Tag{language.English}, WithUseIsolating(false))
	res, err := ParseResource("main.yaml", []byte(`
messages:
  at: ["At ", {fn: DATETIME, args: [{var: when}], named: {dateStyle: hidden, timeStyle: full}}]
`))
	require.NoError(t, err)
	require.NoError(t, b.AddResource(res))

	text, errs, err := b.FormatMessage("at", Args{"when": DateTime(pi)})
	require.NoError(t, err)
	assert.Equal(t, "At 3:04:05 PM", text)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrFormatterConstruction)
}

func TestDateTimeZones(t *testing.T) {
	india := time.Date(2025, time.March, 14, 15, 4, 5, 0, time.FixedZone("IST", 5*3600+30*60))
	pacific := time.Date(2025, time.March, 14, 15, 4, 5, 0, time.FixedZone("PST", -8*3600))
	odd := time.Date(2025, time.March, 14, 15, 4, 5, 0, time.FixedZone("LMT", 3600+15))
	hidden := DateTimeOptions{DateStyle: StyleHidden, TimeStyle: StyleHidden}

	tests := []struct {
		name string
		t    time.Time
		zone TimeZoneStyle
		want string
	}{
		{"gmt zero", pi, ZoneGMT, "GMT"},
		{"gmt half hour", india, ZoneGMT, "GMT+5:30"},
		{"gmt negative", pacific, ZoneGMT, "GMT-8"},
		{"gmt seconds", odd, ZoneGMT, "GMT+1:00:15"},
		{"basic", india, ZoneBasic, "+0530"},
		{"basic zero", pi, ZoneBasic, "+0000"},
		{"extended", pacific, ZoneExtended, "-08:00"},
		{"extended seconds", odd, ZoneExtended, "+01:00:15"},
		{"utc basic zero", pi, ZoneUTCBasic, "Z"},
		{"utc basic", india, ZoneUTCBasic, "+0530"},
		{"utc extended zero", pi, ZoneUTCExtended, "Z"},
		{"utc extended", india, ZoneUTCExtended, "+05:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := hidden
			opts.TimeZoneStyle = tt.zone
			v := DateTimeValue{Value: tt.t, Options: opts}
			got, err := v.format(language.English, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateTimeZonedKind(t *testing.T) {
	v := DateTimeValue{Value: pi, Options: DateTimeOptions{TimeStyle: StyleHidden, TimeZoneStyle: ZoneGMT}}
	got, err := v.format(language.English, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mar 14, 2025 GMT", got)

	kind, ok := selectDateTimeKind(StyleHidden, StyleShort, ZoneBasic)
	require.True(t, ok)
	assert.Equal(t, kindZonedDateTime, kind)
}

func TestDateTimeAllHidden(t *testing.T) {
	v := DateTimeValue{Value: pi, Options: DateTimeOptions{DateStyle: StyleHidden, TimeStyle: StyleHidden}}
	got, err := v.format(language.English, nil)
	assert.True(t, errors.Is(err, ErrFormatterConstruction))
	assert.Equal(t, "2025-03-14T15:04:05Z", got)
}

func TestDateTimeFormatterCached(t *testing.T) {
	cache := NewConfinedCache()
	v := DateTime(pi)
	for range 3 {
		_, err := v.format(language.English, cache)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, cache.Len())

	v.Options.DateStyle = StyleShort
	_, err := v.format(language.English, cache)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestDateTimeOptionsMerge(t *testing.T) {
	opts := DateTimeOptions{DateStyle: StyleShort}
	opts.Merge(Args{
		"timeStyle":     String("short"),
		"timezoneStyle": String("utcExtended"),
		"dateStyle":     String("tiny"),
		"hour12":        String("true"),
		"other":         Number(3),
	})

	assert.Equal(t, DateTimeOptions{
		DateStyle:     StyleMedium,
		TimeStyle:     StyleShort,
		TimeZoneStyle: ZoneUTCExtended,
	}, opts)
}

func TestBuiltinFunctions(t *testing.T) {
	t.Run("number from string", func(t *testing.T) {
		got := NumberFunction([]Value{String("2.50")}, Args{"minimumFractionDigits": Number(1)})
		n, ok := got.(NumberValue)
		require.True(t, ok)
		assert.Equal(t, 2.5, n.Value)
	})

	t.Run("number rejects text", func(t *testing.T) {
		assert.Equal(t, ErrorValue{}, NumberFunction([]Value{String("many")}, nil))
		assert.Equal(t, ErrorValue{}, NumberFunction(nil, nil))
		assert.Equal(t, ErrorValue{}, NumberFunction([]Value{DateTime(pi)}, nil))
	})

	t.Run("datetime from string", func(t *testing.T) {
		got := DateTimeFunction([]Value{String("2025-03-14T15:04:05Z")}, Args{"dateStyle": String("long")})
		dt, ok := got.(DateTimeValue)
		require.True(t, ok)
		assert.True(t, dt.Value.Equal(pi))
		assert.Equal(t, StyleLong, dt.Options.DateStyle)
	})

	t.Run("datetime rejects text", func(t *testing.T) {
		assert.Equal(t, ErrorValue{}, DateTimeFunction([]Value{String("yesterday")}, nil))
		assert.Equal(t, ErrorValue{}, DateTimeFunction([]Value{Number(1)}, nil))
		assert.Equal(t, ErrorValue{}, DateTimeFunction([]Value{String("a"), String("b")}, nil))
	})
}
