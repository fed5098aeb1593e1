package ethiopian

import "time"

// Month names in calendar order. Index 12 is the short month ጳጉሜን.
var monthNames = [13]string{
	"መስከረም",
	"ጥቅምት",
	"ኅዳር",
	"ታኅሣሥ",
	"ጥር",
	"የካቲት",
	"መጋቢት",
	"ሚያዝያ",
	"ግንቦት",
	"ሰኔ",
	"ሐምሌ",
	"ነሐሴ",
	"ጳጉሜን",
}

// Weekday names indexed by time.Weekday (Sunday first).
var weekdayNames = [7]string{
	"እሑድ",
	"ሰኞ",
	"ማክሰኞ",
	"ረቡዕ",
	"ሐሙስ",
	"ዓርብ",
	"ቅዳሜ",
}

// MonthNames returns a copy of the 13 month names.
func MonthNames() []string {
	names := make([]string, len(monthNames))
	copy(names, monthNames[:])
	return names
}

// WeekdayNames returns a copy of the 7 weekday names, Sunday first.
func WeekdayNames() []string {
	names := make([]string, len(weekdayNames))
	copy(names, weekdayNames[:])
	return names
}

// MonthName returns the name for a month index, or "" when out of range.
func MonthName(month int) string {
	if month < 0 || month >= len(monthNames) {
		return ""
	}
	return monthNames[month]
}

// WeekdayName returns the name for a weekday, or "" when out of range.
func WeekdayName(weekday time.Weekday) string {
	if weekday < time.Sunday || weekday > time.Saturday {
		return ""
	}
	return weekdayNames[weekday]
}

// Period is one of the four quadrants of the shifted day.
type Period int

const (
	PeriodA Period = iota // [0,6)
	PeriodB               // [6,12)
	PeriodC               // [12,18)
	PeriodD               // [18,24)
)

var periodLabels = [4]string{
	"ጠዋት",
	"ሌሊት",
	"ምሽት",
	"ከሰዓት",
}

// Label returns the Amharic label shown next to the display hour.
func (p Period) Label() string {
	if p < PeriodA || p > PeriodD {
		return ""
	}
	return periodLabels[p]
}

func (p Period) String() string {
	return p.Label()
}

func periodOf(shiftedHour int) Period {
	switch {
	case shiftedHour < 6:
		return PeriodA
	case shiftedHour < 12:
		return PeriodB
	case shiftedHour < 18:
		return PeriodC
	default:
		return PeriodD
	}
}
