// Package ethiopian converts Gregorian wall-clock values into the Ethiopian
// calendar date and the six-hour-offset time of day shown by the Rona clock.
package ethiopian

import (
	"fmt"
	"strings"
	"time"
)

// YearMode selects how the Ethiopian year is derived from the Gregorian one.
type YearMode string

const (
	// YearUniform subtracts 8 for every date.
	YearUniform YearMode = "uniform"
	// YearCutover subtracts 7 from September 11 onward and 8 before it.
	YearCutover YearMode = "cutover"
)

// ParseYearMode accepts "uniform" or "cutover"; empty means uniform.
func ParseYearMode(s string) (YearMode, error) {
	switch YearMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", YearUniform:
		return YearUniform, nil
	case YearCutover:
		return YearCutover, nil
	default:
		return "", fmt.Errorf("unknown year mode %q", s)
	}
}

// Date is an Ethiopian calendar date. Month is 0-based (0 = መስከረም, 12 = ጳጉሜን).
type Date struct {
	Year    int
	Month   int
	Day     int
	Weekday time.Weekday
}

func (d Date) MonthName() string   { return MonthName(d.Month) }
func (d Date) WeekdayName() string { return WeekdayName(d.Weekday) }

// TimeOfDay is a Gregorian time shifted by six hours.
type TimeOfDay struct {
	Hour        int // shifted hour, 0-23
	DisplayHour int // 1-12
	Minute      int
	Second      int
	Period      Period
}

// Converter carries the year convention; the zero value uses YearUniform.
type Converter struct {
	YearMode YearMode
}

var defaultConverter = Converter{YearMode: YearUniform}

// ConvertDate converts with the uniform year convention.
func ConvertDate(year, month, day, weekday int) (Date, error) {
	return defaultConverter.ConvertDate(year, month, day, weekday)
}

// ConvertDate maps a Gregorian date onto the Ethiopian calendar. month is
// 1-12 and weekday is 0 (Sunday) to 6.
func (c Converter) ConvertDate(year, month, day, weekday int) (Date, error) {
	if err := ValidateDate(year, month, day); err != nil {
		return Date{}, err
	}
	if weekday < 0 || weekday > 6 {
		return Date{}, &DateInputError{Field: "weekday", Value: weekday}
	}

	rule, _ := ruleFor(month)
	ethMonth, ethDay := rule.apply(day)
	return Date{
		Year:    c.year(year, month, day),
		Month:   ethMonth,
		Day:     ethDay,
		Weekday: time.Weekday(weekday),
	}, nil
}

// ValidateDate checks a Gregorian year, month and day without converting.
func ValidateDate(year, month, day int) error {
	if year < 9 {
		return &DateInputError{Field: "year", Value: year}
	}
	if month < 1 || month > 12 {
		return &DateInputError{Field: "month", Value: month}
	}
	if day < 1 || day > daysIn(year, month) {
		return &DateInputError{Field: "day", Value: day}
	}
	return nil
}

func (c Converter) year(year, month, day int) int {
	if c.YearMode == YearCutover && (month > 9 || (month == 9 && day >= 11)) {
		return year - 7
	}
	return year - 8
}

// ConvertTime shifts a Gregorian time by six hours. Hours outside 0-23 are
// reduced modulo 24.
func ConvertTime(hour, minute, second int) (TimeOfDay, error) {
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, &TimeInputError{Field: "minute", Value: minute}
	}
	if second < 0 || second > 59 {
		return TimeOfDay{}, &TimeInputError{Field: "second", Value: second}
	}

	shifted := ((hour+6)%24 + 24) % 24
	display := shifted % 12
	if display == 0 {
		display = 12
	}
	return TimeOfDay{
		Hour:        shifted,
		DisplayHour: display,
		Minute:      minute,
		Second:      second,
		Period:      periodOf(shifted),
	}, nil
}

// FromTime converts the wall-clock fields of t in its own location.
func (c Converter) FromTime(t time.Time) (Date, TimeOfDay, error) {
	date, err := c.ConvertDate(t.Year(), int(t.Month()), t.Day(), int(t.Weekday()))
	if err != nil {
		return Date{}, TimeOfDay{}, err
	}
	tod, err := ConvertTime(t.Hour(), t.Minute(), t.Second())
	if err != nil {
		return Date{}, TimeOfDay{}, err
	}
	return date, tod, nil
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
