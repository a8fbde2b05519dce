package task

import (
	"fmt"
	"strconv"
	"strings"
)

// MinYear is the earliest year a task may be scheduled in.
const MinYear = 2023

// Date is a calendar day used as the key of a schedule entry.
// No normalisation is applied: two Dates are equal iff all three fields match.
type Date struct {
	Day   int
	Month int
	Year  int
}

// NewDate returns a Date for the given day, month and year.
func NewDate(day, month, year int) Date {
	return Date{Day: day, Month: month, Year: year}
}

// IsValidDate reports whether day/month/year names a schedulable date.
// Years before MinYear are rejected, as are days past the end of the month
// (February 29 only on Gregorian leap years).
func IsValidDate(day, month, year int) bool {
	if year < MinYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	switch month {
	case 4, 6, 9, 11:
		if day > 30 {
			return false
		}
	case 2:
		if day > 29 || (day == 29 && !isLeapYear(year)) {
			return false
		}
	}
	return true
}

// IsBefore reports whether d1 is strictly earlier than d2, comparing year,
// then month, then day. Equal dates are not before each other.
func IsBefore(d1, d2 Date) bool {
	if d1.Year != d2.Year {
		return d1.Year < d2.Year
	}
	if d1.Month != d2.Month {
		return d1.Month < d2.Month
	}
	return d1.Day < d2.Day
}

// Valid is shorthand for IsValidDate(d.Day, d.Month, d.Year).
func (d Date) Valid() bool {
	return IsValidDate(d.Day, d.Month, d.Year)
}

// Before is shorthand for IsBefore(d, other).
func (d Date) Before(other Date) bool {
	return IsBefore(d, other)
}

// String returns the date as dd/mm/yyyy.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// Short returns the date as d/m/y without any zero padding.
func (d Date) Short() string {
	return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year)
}

// ParseDate parses a "d/m/y" string (zero padding optional). It checks the
// shape only; call Valid to apply the calendar rules.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("invalid date %q: expected dd/mm/yyyy", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2]), nil
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
