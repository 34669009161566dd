package responses

import (
	"fmt"
	"time"
)

// PatientSummary is the normalized row surfaced to the registration form for
// each registry match. UUID mirrors ID because the registry does not expose a
// separate logical identifier in the consumed subset.
type PatientSummary struct {
	ID        string `json:"id"`
	UUID      string `json:"uuid"`
	FullName  string `json:"full_name"`
	Gender    string `json:"gender"`
	BirthDate string `json:"birth_date"`
}

type PagedResult struct {
	Results []PatientSummary `json:"results"`
	Total   int              `json:"total"`
}

// CalendarDate is a plain year/month/day with no time-of-day and no zone.
// It exists so a date-only registry value never passes through a UTC epoch
// and shifts by a day when rendered in the caller's local zone.
type CalendarDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Valid reports whether the components form a real calendar date.
func (d CalendarDate) Valid() bool {
	if d.Year <= 0 || d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return t.Year() == d.Year && t.Month() == d.Month && t.Day() == d.Day
}

// ResolvedNameDate is the form-ready split of one selected PatientSummary.
// BirthDate is nil when the registry's birth-date text could not be parsed.
type ResolvedNameDate struct {
	GivenName  string        `json:"given_name"`
	MiddleName string        `json:"middle_name"`
	FamilyName string        `json:"family_name"`
	BirthDate  *CalendarDate `json:"birth_date"`
}
