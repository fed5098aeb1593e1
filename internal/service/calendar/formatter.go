package calendar

import (
	"fmt"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rona-hr/rona-backend-go/internal/domain/calendar"
	"github.com/rona-hr/rona-backend-go/internal/pkg/ethiopian"
)

// Formatter renders an instant as the clock widget shows it in one language.
type Formatter interface {
	Language() calendar.Language
	Format(t time.Time, mode ethiopian.YearMode) (calendar.Clock, error)
}

// Formatters holds one Formatter per supported language.
type Formatters struct {
	byLang map[calendar.Language]Formatter
}

func NewFormatters(bundle *i18n.Bundle) *Formatters {
	return &Formatters{
		byLang: map[calendar.Language]Formatter{
			calendar.LanguageEnglish: NewGregorianFormatter(bundle),
			calendar.LanguageAmharic: NewEthiopianFormatter(bundle),
		},
	}
}

func (f *Formatters) Get(lang calendar.Language) (Formatter, error) {
	formatter, ok := f.byLang[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", calendar.ErrUnsupportedLanguage, lang)
	}
	return formatter, nil
}

// GregorianFormatter renders "Thursday, September 11, 2025" and "3:04:05 PM".
type GregorianFormatter struct {
	localizer *i18n.Localizer
}

func NewGregorianFormatter(bundle *i18n.Bundle) *GregorianFormatter {
	return &GregorianFormatter{localizer: i18n.NewLocalizer(bundle, string(calendar.LanguageEnglish))}
}

func (g *GregorianFormatter) Language() calendar.Language {
	return calendar.LanguageEnglish
}

func (g *GregorianFormatter) Format(t time.Time, _ ethiopian.YearMode) (calendar.Clock, error) {
	date, err := localize(g.localizer, msgClockDate, map[string]interface{}{
		"Weekday": t.Weekday().String(),
		"Month":   t.Month().String(),
		"Day":     t.Day(),
		"Year":    t.Year(),
	})
	if err != nil {
		return calendar.Clock{}, err
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}
	clock, err := localize(g.localizer, msgClockTime, timeData(hour, t.Minute(), t.Second(), period))
	if err != nil {
		return calendar.Clock{}, err
	}

	return calendar.Clock{
		Language: calendar.LanguageEnglish,
		Date:     date,
		Time:     clock,
		Instant:  t,
	}, nil
}

// EthiopianFormatter renders "ሐሙስ, መስከረም 1, 2017" and "5:00:00 ጠዋት".
type EthiopianFormatter struct {
	localizer *i18n.Localizer
}

func NewEthiopianFormatter(bundle *i18n.Bundle) *EthiopianFormatter {
	return &EthiopianFormatter{localizer: i18n.NewLocalizer(bundle, string(calendar.LanguageAmharic))}
}

func (e *EthiopianFormatter) Language() calendar.Language {
	return calendar.LanguageAmharic
}

func (e *EthiopianFormatter) Format(t time.Time, mode ethiopian.YearMode) (calendar.Clock, error) {
	date, tod, err := ethiopian.Converter{YearMode: mode}.FromTime(t)
	if err != nil {
		return calendar.Clock{}, err
	}

	dateStr, err := localize(e.localizer, msgClockDate, map[string]interface{}{
		"Weekday": date.WeekdayName(),
		"Month":   date.MonthName(),
		"Day":     date.Day,
		"Year":    date.Year,
	})
	if err != nil {
		return calendar.Clock{}, err
	}

	timeStr, err := localize(e.localizer, msgClockTime, timeData(tod.DisplayHour, tod.Minute, tod.Second, tod.Period.Label()))
	if err != nil {
		return calendar.Clock{}, err
	}

	return calendar.Clock{
		Language:  calendar.LanguageAmharic,
		Date:      dateStr,
		Time:      timeStr,
		Instant:   t,
		Ethiopian: &date,
		TimeOfDay: &tod,
	}, nil
}

func timeData(hour, minute, second int, period string) map[string]interface{} {
	return map[string]interface{}{
		"Hour":   hour,
		"Minute": fmt.Sprintf("%02d", minute),
		"Second": fmt.Sprintf("%02d", second),
		"Period": period,
	}
}

func localize(l *i18n.Localizer, id string, data map[string]interface{}) (string, error) {
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return "", fmt.Errorf("localize %s: %w", id, err)
	}
	return msg, nil
}
