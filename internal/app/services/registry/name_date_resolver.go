package registry

import (
	"registro-service/internal/pkg/dto/responses"
	"strconv"
	"strings"
	"time"
)

// ResolveNameDate splits a registry full name into form fields and parses its
// birth-date text into a calendar date. Both halves are best effort: an
// unsplittable name fills what it can, an unparseable date yields a nil
// BirthDate, never an error.
//
// The name split assumes a "given [middle] family..." token order. Registries
// using family-name-first conventions will be mis-split; this is a known
// limitation of the heuristic, not corrected here.
func ResolveNameDate(fullName, birthDateText string) responses.ResolvedNameDate {
	resolved := responses.ResolvedNameDate{}

	tokens := strings.Fields(fullName)
	switch {
	case len(tokens) == 1:
		resolved.GivenName = tokens[0]
	case len(tokens) == 2:
		resolved.GivenName = tokens[0]
		resolved.FamilyName = tokens[1]
	case len(tokens) >= 3:
		resolved.GivenName = tokens[0]
		resolved.MiddleName = tokens[1]
		resolved.FamilyName = strings.Join(tokens[2:], " ")
	}

	resolved.BirthDate = ParseBirthDate(birthDateText)
	return resolved
}

// dateParser attempts one interpretation of a birth-date string. Parsers are
// tried in a fixed order; the first success wins.
type dateParser func(string) (responses.CalendarDate, bool)

var dateParsers = []dateParser{
	parseISODateTime,
	parseISODate,
	parseSlashDayMonthYear,
	parseGenericDate,
}

// ParseBirthDate resolves loosely formatted registry date text into a
// calendar date, or nil when no interpretation fits. Every branch constructs
// the date from explicit year/month/day components; the string is never routed
// through a UTC interpretation that a local-time render could shift by a day.
func ParseBirthDate(birthDateText string) *responses.CalendarDate {
	text := strings.TrimSpace(birthDateText)
	if text == "" {
		return nil
	}

	for _, parse := range dateParsers {
		if date, ok := parse(text); ok {
			return &date
		}
	}
	return nil
}

// parseISODateTime handles ISO 8601 date-times by taking only the substring
// before the 'T', discarding the time-of-day and zone designator.
func parseISODateTime(text string) (responses.CalendarDate, bool) {
	datePart, _, found := strings.Cut(text, "T")
	if !found {
		return responses.CalendarDate{}, false
	}
	return parseISODate(datePart)
}

func parseISODate(text string) (responses.CalendarDate, bool) {
	if !strings.Contains(text, "-") {
		return responses.CalendarDate{}, false
	}
	return dateFromParts(strings.Split(text, "-"), 0, 1, 2)
}

// parseSlashDayMonthYear interprets slash-separated dates day first, per the
// target locale, so 31/12/1999 is December 31st and never a month overflow.
func parseSlashDayMonthYear(text string) (responses.CalendarDate, bool) {
	if !strings.Contains(text, "/") {
		return responses.CalendarDate{}, false
	}
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return responses.CalendarDate{}, false
	}
	return dateFromParts(parts, 2, 1, 0)
}

var genericDateLayouts = []string{
	"2 January 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02 Jan 2006",
	"20060102",
}

func parseGenericDate(text string) (responses.CalendarDate, bool) {
	for _, layout := range genericDateLayouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}
		year, month, day := t.Date()
		return responses.CalendarDate{Year: year, Month: month, Day: day}, true
	}
	return responses.CalendarDate{}, false
}

func dateFromParts(parts []string, yearIdx, monthIdx, dayIdx int) (responses.CalendarDate, bool) {
	if len(parts) != 3 {
		return responses.CalendarDate{}, false
	}

	year, err := strconv.Atoi(strings.TrimSpace(parts[yearIdx]))
	if err != nil {
		return responses.CalendarDate{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[monthIdx]))
	if err != nil {
		return responses.CalendarDate{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[dayIdx]))
	if err != nil {
		return responses.CalendarDate{}, false
	}

	date := responses.CalendarDate{Year: year, Month: time.Month(month), Day: day}
	if !date.Valid() {
		return responses.CalendarDate{}, false
	}
	return date, true
}
