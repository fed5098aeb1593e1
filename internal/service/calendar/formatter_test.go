package calendar

import (
	"testing"
	"time"

	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFormatters(t *testing.T) *Formatters {
	t.Helper()
	bundle, err := LoadBundle()
	require.NoError(t, err)
	return NewFormatters(bundle)
}

func TestGregorianFormatter_Format(t *testing.T) {
	f, err := newTestFormatters(t).Get(calendar.LanguageEnglish)
	require.NoError(t, err)

	at := time.Date(2025, 9, 11, 15, 4, 5, 0, time.UTC)
	clock, err := f.Format(at, ethiopian.YearUniform)
	require.NoError(t, err)

	assert.Equal(t, calendar.LanguageEnglish, clock.Language)
	assert.Equal(t, "Thursday, September 11, 2025", clock.Date)
	assert.Equal(t, "3:04:05 PM", clock.Time)
	assert.Nil(t, clock.Ethiopian)
	assert.Nil(t, clock.TimeOfDay)
}

func TestGregorianFormatter_MidnightAndNoon(t *testing.T) {
	f, err := newTestFormatters(t).Get(calendar.LanguageEnglish)
	require.NoError(t, err)

	midnight, err := f.Format(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Equal(t, "12:00:00 AM", midnight.Time)

	noon, err := f.Format(time.Date(2025, 1, 1, 12, 0, 9, 0, time.UTC), "")
	require.NoError(t, err)
	assert.Equal(t, "12:00:09 PM", noon.Time)
}

func TestEthiopianFormatter_Format(t *testing.T) {
	f, err := newTestFormatters(t).Get(calendar.LanguageAmharic)
	require.NoError(t, err)

	at := time.Date(2025, 9, 11, 23, 0, 0, 0, time.UTC)
	clock, err := f.Format(at, ethiopian.YearUniform)
	require.NoError(t, err)

	assert.Equal(t, calendar.LanguageAmharic, clock.Language)
	assert.Equal(t, "ሐሙስ, መስከረም 1, 2017", clock.Date)
	assert.Equal(t, "5:00:00 ጠዋት", clock.Time)
	require.NotNil(t, clock.Ethiopian)
	require.NotNil(t, clock.TimeOfDay)
	assert.Equal(t, 0, clock.Ethiopian.Month)
	assert.Equal(t, 5, clock.TimeOfDay.DisplayHour)
}

func TestEthiopianFormatter_CutoverYear(t *testing.T) {
	f, err := newTestFormatters(t).Get(calendar.LanguageAmharic)
	require.NoError(t, err)

	clock, err := f.Format(time.Date(2025, 9, 11, 6, 30, 0, 0, time.UTC), ethiopian.YearCutover)
	require.NoError(t, err)
	assert.Equal(t, "ሐሙስ, መስከረም 1, 2018", clock.Date)
	assert.Equal(t, "12:30:00 ምሽት", clock.Time)
}

func TestFormatters_Unsupported(t *testing.T) {
	_, err := newTestFormatters(t).Get(calendar.Language("fr"))
	assert.ErrorIs(t, err, calendar.ErrUnsupportedLanguage)
}

func TestFormatters_LanguageMatchesKey(t *testing.T) {
	formatters := newTestFormatters(t)
	for _, lang := range calendar.AllLanguages() {
		f, err := formatters.Get(lang)
		require.NoError(t, err)
		assert.Equal(t, lang, f.Language())
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		input string
		want  calendar.Language
	}{
		{"en", calendar.LanguageEnglish},
		{"am", calendar.LanguageAmharic},
		{"AM", calendar.LanguageAmharic},
		{"am-ET", calendar.LanguageAmharic},
		{"en-US", calendar.LanguageEnglish},
		{"am-ET,am;q=0.9,en;q=0.5", calendar.LanguageAmharic},
		{"fr-FR,en;q=0.8", calendar.LanguageEnglish},
	}
	for _, c := range cases {
		got, err := ParseLanguage(c.input)
		require.NoError(t, err, c.input)
		assert.Equal(t, c.want, got, c.input)
	}

	for _, bad := range []string{"", "  ", "zz-invalid-@@", "fr"} {
		_, err := ParseLanguage(bad)
		assert.ErrorIs(t, err, calendar.ErrUnsupportedLanguage, bad)
	}
}
