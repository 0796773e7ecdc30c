package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleFlagSplitsLists(t *testing.T) {
	var f localeFlag
	require.NoError(t, f.Set("en, en-GB,,de"))
	require.NoError(t, f.Set("pl"))

	assert.Equal(t, []string{"en", "en-GB", "de", "pl"}, f.items)
	assert.Equal(t, "en,en-GB,de,pl", f.String())
}

func TestRenderSourceProducesFormattedGo(t *testing.T) {
	cal := calendarPayload{
		Locale:          "xx",
		Months:          [12]string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8", "m9", "m10", "m11", "m12"},
		DayPeriods:      [2]string{"AM", "PM"},
		DateFormats:     [4]string{"EEEE d MMMM y", "d MMMM y", "d MMM y", "d/M/yy"},
		TimeFormats:     [2]string{"HH:mm:ss", "HH:mm"},
		DateTimeFormats: [4]string{"{1} {0}", "{1} {0}", "{1} {0}", "{1} {0}"},
		GMTFormat:       "GMT{0}",
		GMTZeroFormat:   "GMT",
	}

	src, err := renderSource("fluent", []calendarPayload{cal})
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by fluent-cldr. DO NOT EDIT."))
	assert.Contains(t, out, "package fluent")
	assert.Contains(t, out, `"xx": {`)
	assert.Contains(t, out, `"d/M/yy"`)
	assert.Contains(t, out, "func GeneratedCLDRLocales() []string")
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 2, indexOf(dateLengths, "medium"))
	assert.Equal(t, -1, indexOf(timeLengths, "full"))
}
