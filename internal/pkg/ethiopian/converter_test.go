package ethiopian

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDate_NewYearBoundary(t *testing.T) {
	// 2025-09-11 is a Thursday.
	got, err := ConvertDate(2025, 9, 11, int(time.Thursday))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Month)
	assert.Equal(t, "መስከረም", got.MonthName())
	assert.Equal(t, 1, got.Day)
	assert.Equal(t, 2017, got.Year)
	assert.Equal(t, "ሐሙስ", got.WeekdayName())
}

func TestConvertDate_DayBeforeNewYear(t *testing.T) {
	got, err := ConvertDate(2025, 9, 10, int(time.Wednesday))
	require.NoError(t, err)
	assert.Equal(t, 11, got.Month)
	assert.Equal(t, 30, got.Day)
	assert.Equal(t, "ነሐሴ", got.MonthName())
}

func TestConvertDate_RuleRows(t *testing.T) {
	cases := []struct {
		month, day       int
		wantMonth, wantD int
	}{
		{1, 1, 3, 23},
		{1, 8, 3, 30},
		{1, 9, 4, 1},
		{2, 7, 4, 30},
		{2, 8, 5, 1},
		{3, 9, 5, 30},
		{3, 10, 6, 1},
		{4, 8, 6, 30},
		{4, 9, 7, 1},
		{5, 8, 7, 30},
		{5, 9, 8, 1},
		{6, 7, 8, 30},
		{6, 8, 9, 1},
		{7, 7, 9, 30},
		{7, 8, 10, 1},
		{8, 6, 10, 30},
		{8, 7, 11, 1},
		{9, 1, 11, 21},
		{9, 30, 0, 20},
		{10, 10, 0, 30},
		{10, 11, 1, 1},
		{11, 9, 1, 30},
		{11, 10, 2, 1},
		{12, 9, 2, 30},
		{12, 10, 3, 1},
		{12, 31, 3, 22},
	}
	for _, c := range cases {
		got, err := ConvertDate(2023, c.month, c.day, 0)
		require.NoError(t, err, "month %d day %d", c.month, c.day)
		assert.Equal(t, c.wantMonth, got.Month, "month %d day %d", c.month, c.day)
		assert.Equal(t, c.wantD, got.Day, "month %d day %d", c.month, c.day)
	}
}

func TestConvertDate_EveryDayStaysInRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		got, err := ConvertDate(d.Year(), int(d.Month()), d.Day(), int(d.Weekday()))
		require.NoError(t, err, d.Format(time.DateOnly))
		assert.GreaterOrEqual(t, got.Day, 1, d.Format(time.DateOnly))
		assert.LessOrEqual(t, got.Day, 30, d.Format(time.DateOnly))
		assert.Contains(t, MonthNames(), got.MonthName())
		assert.Equal(t, WeekdayNames()[d.Weekday()], got.WeekdayName())
	}
}

func TestConvertDate_Deterministic(t *testing.T) {
	a, errA := ConvertDate(2026, 2, 14, 6)
	b, errB := ConvertDate(2026, 2, 14, 6)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestConvertDate_WeekdayPassesThrough(t *testing.T) {
	for wd := 0; wd < 7; wd++ {
		got, err := ConvertDate(2025, 3, 15, wd)
		require.NoError(t, err)
		assert.Equal(t, weekdayNames[wd], got.WeekdayName())
	}
}

func TestConvertDate_YearModes(t *testing.T) {
	cutover := Converter{YearMode: YearCutover}

	before, err := cutover.ConvertDate(2025, 9, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, 2017, before.Year)

	after, err := cutover.ConvertDate(2025, 9, 11, 4)
	require.NoError(t, err)
	assert.Equal(t, 2018, after.Year)

	december, err := cutover.ConvertDate(2025, 12, 25, 4)
	require.NoError(t, err)
	assert.Equal(t, 2018, december.Year)

	uniform, err := Converter{}.ConvertDate(2025, 12, 25, 4)
	require.NoError(t, err)
	assert.Equal(t, 2017, uniform.Year)
}

func TestConvertDate_InvalidInput(t *testing.T) {
	cases := []struct {
		name                    string
		year, month, day, wkday int
		field                   string
	}{
		{"month zero", 2025, 0, 1, 0, "month"},
		{"month thirteen", 2025, 13, 1, 0, "month"},
		{"day zero", 2025, 9, 0, 0, "day"},
		{"day 32", 2025, 1, 32, 0, "day"},
		{"feb 29 non leap", 2025, 2, 29, 0, "day"},
		{"september 31", 2025, 9, 31, 0, "day"},
		{"weekday 7", 2025, 9, 11, 7, "weekday"},
		{"negative weekday", 2025, 9, 11, -1, "weekday"},
		{"year too small", 8, 9, 11, 0, "year"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ConvertDate(c.year, c.month, c.day, c.wkday)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidDateInput))
			var inputErr *DateInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, c.field, inputErr.Field)
		})
	}
}

func TestConvertDate_LeapDay(t *testing.T) {
	got, err := ConvertDate(2024, 2, 29, int(time.Thursday))
	require.NoError(t, err)
	assert.Equal(t, 5, got.Month)
	assert.Equal(t, 22, got.Day)
}

func TestConvertTime_Boundaries(t *testing.T) {
	cases := []struct {
		hour        int
		wantHour    int
		wantDisplay int
		wantLabel   string
	}{
		{23, 5, 5, "ጠዋት"},
		{6, 12, 12, "ምሽት"},
		{18, 0, 12, "ጠዋት"},
		{0, 6, 6, "ሌሊት"},
		{5, 11, 11, "ሌሊት"},
		{12, 18, 6, "ከሰዓት"},
		{17, 23, 11, "ከሰዓት"},
		{11, 17, 5, "ምሽት"},
	}
	for _, c := range cases {
		got, err := ConvertTime(c.hour, 30, 15)
		require.NoError(t, err)
		assert.Equal(t, c.wantHour, got.Hour, "hour %d", c.hour)
		assert.Equal(t, c.wantDisplay, got.DisplayHour, "hour %d", c.hour)
		assert.Equal(t, c.wantLabel, got.Period.Label(), "hour %d", c.hour)
		assert.Equal(t, 30, got.Minute)
		assert.Equal(t, 15, got.Second)
	}
}

func TestConvertTime_Periodic(t *testing.T) {
	for h := 0; h < 24; h++ {
		base, err := ConvertTime(h, 0, 0)
		require.NoError(t, err)
		next, err := ConvertTime(h+24, 0, 0)
		require.NoError(t, err)
		prev, err := ConvertTime(h-24, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, base, next, "hour %d", h)
		assert.Equal(t, base, prev, "hour %d", h)
	}
}

func TestConvertTime_InvalidInput(t *testing.T) {
	_, err := ConvertTime(10, 60, 0)
	assert.ErrorIs(t, err, ErrInvalidTimeInput)

	_, err = ConvertTime(10, 0, -1)
	assert.ErrorIs(t, err, ErrInvalidTimeInput)
}

func TestFromTime(t *testing.T) {
	at := time.Date(2025, 9, 11, 23, 5, 9, 0, time.UTC)
	date, tod, err := Converter{}.FromTime(at)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2017, Month: 0, Day: 1, Weekday: time.Thursday}, date)
	assert.Equal(t, 5, tod.DisplayHour)
	assert.Equal(t, PeriodA, tod.Period)
}

func TestRules_CopyIsIndependent(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 12)
	for i, r := range rules {
		assert.Equal(t, i+1, r.GregorianMonth)
	}
	rules[0].CutoverDay = 99
	assert.Equal(t, 8, Rules()[0].CutoverDay)
}

func TestParseYearMode(t *testing.T) {
	mode, err := ParseYearMode("")
	require.NoError(t, err)
	assert.Equal(t, YearUniform, mode)

	mode, err = ParseYearMode(" Cutover ")
	require.NoError(t, err)
	assert.Equal(t, YearCutover, mode)

	_, err = ParseYearMode("lunar")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Len(t, MonthNames(), 13)
	assert.Equal(t, "ጳጉሜን", MonthName(12))
	assert.Equal(t, "", MonthName(13))
	assert.Len(t, WeekdayNames(), 7)
	assert.Equal(t, "", WeekdayName(time.Weekday(7)))
	assert.Equal(t, "", Period(4).Label())
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate(2024, 2, 29))
	assert.ErrorIs(t, ValidateDate(2023, 2, 29), ErrInvalidDateInput)
	assert.ErrorIs(t, ValidateDate(2023, 4, 31), ErrInvalidDateInput)
}
