package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var dayRegex = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// ParseDay parses a dd/mm/yyyy date and returns the corresponding
// canonical calendar day.
func ParseDay(input string) (time.Time, error) {
	matches := dayRegex.FindStringSubmatch(input)
	if len(matches) != 4 {
		return time.Time{}, fmt.Errorf("invalid date format %q, use dd/mm/yyyy", input)
	}

	day, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day")
	}
	month, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month")
	}
	year, err := strconv.Atoi(matches[3])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid year")
	}

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, Reference)

	// Check if date is valid (handles leap years, etc.)
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date %q", input)
	}

	return date, nil
}

// FormatDay formats a calendar day as dd/mm/yyyy
func FormatDay(day time.Time) string {
	return day.In(Reference).Format("02/01/2006")
}
