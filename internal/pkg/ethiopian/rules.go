package ethiopian

// Shift moves a Gregorian day-of-month onto an Ethiopian month.
type Shift struct {
	Month     int `json:"month"`
	DayOffset int `json:"day_offset"`
}

// MonthRule maps one Gregorian month onto the two Ethiopian months it spans.
// Before applies to days up to and including CutoverDay, After to the rest.
type MonthRule struct {
	GregorianMonth int   `json:"gregorian_month"`
	CutoverDay     int   `json:"cutover_day"`
	Before         Shift `json:"before"`
	After          Shift `json:"after"`
}

// apply returns the Ethiopian month index and day for a Gregorian day.
func (r MonthRule) apply(day int) (month, ethDay int) {
	if day <= r.CutoverDay {
		return r.Before.Month, day + r.Before.DayOffset
	}
	return r.After.Month, day + r.After.DayOffset
}

// Table for a non-leap year starting on September 11. September keeps the
// clock widget's mapping: days 1-10 land on ነሐሴ 21-30.
var monthRules = [12]MonthRule{
	{GregorianMonth: 1, CutoverDay: 8, Before: Shift{3, 22}, After: Shift{4, -8}},
	{GregorianMonth: 2, CutoverDay: 7, Before: Shift{4, 23}, After: Shift{5, -7}},
	{GregorianMonth: 3, CutoverDay: 9, Before: Shift{5, 21}, After: Shift{6, -9}},
	{GregorianMonth: 4, CutoverDay: 8, Before: Shift{6, 22}, After: Shift{7, -8}},
	{GregorianMonth: 5, CutoverDay: 8, Before: Shift{7, 22}, After: Shift{8, -8}},
	{GregorianMonth: 6, CutoverDay: 7, Before: Shift{8, 23}, After: Shift{9, -7}},
	{GregorianMonth: 7, CutoverDay: 7, Before: Shift{9, 23}, After: Shift{10, -7}},
	{GregorianMonth: 8, CutoverDay: 6, Before: Shift{10, 24}, After: Shift{11, -6}},
	{GregorianMonth: 9, CutoverDay: 10, Before: Shift{11, 20}, After: Shift{0, -10}},
	{GregorianMonth: 10, CutoverDay: 10, Before: Shift{0, 20}, After: Shift{1, -10}},
	{GregorianMonth: 11, CutoverDay: 9, Before: Shift{1, 21}, After: Shift{2, -9}},
	{GregorianMonth: 12, CutoverDay: 9, Before: Shift{2, 21}, After: Shift{3, -9}},
}

// Rules returns a copy of the month table, ordered January to December.
func Rules() []MonthRule {
	rules := make([]MonthRule, len(monthRules))
	copy(rules, monthRules[:])
	return rules
}

func ruleFor(gregorianMonth int) (MonthRule, bool) {
	if gregorianMonth < 1 || gregorianMonth > len(monthRules) {
		return MonthRule{}, false
	}
	return monthRules[gregorianMonth-1], true
}
