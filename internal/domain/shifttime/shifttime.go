// Package shifttime holds the date/time logic for shifts: resolving a
// stored DD/MM date (which has no year) into a concrete timestamp, and
// classifying how far away a shift is.
package shifttime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidFormat indicates a malformed or out-of-range DD/MM or HH:MM value.
var ErrInvalidFormat = errors.New("formato de data/hora inválido")

// yearRolloverDays is the cutoff for the year inference: a candidate
// date more than this many days in the past is assumed to mean next year.
const yearRolloverDays = 180

// ValidDate reports whether s is a valid DD/MM date string.
func ValidDate(s string) bool {
	_, _, err := parseDate(s)
	return err == nil
}

// ValidTime reports whether s is a valid HH:MM time string.
func ValidTime(s string) bool {
	_, _, err := parseTime(s)
	return err == nil
}

func parseDate(s string) (day, month int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: data %q", ErrInvalidFormat, s)
	}

	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: data %q", ErrInvalidFormat, s)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: data %q", ErrInvalidFormat, s)
	}

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: data %q", ErrInvalidFormat, s)
	}

	return day, month, nil
}

func parseTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: hora %q", ErrInvalidFormat, s)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: hora %q", ErrInvalidFormat, s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: hora %q", ErrInvalidFormat, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: hora %q", ErrInvalidFormat, s)
	}

	return hour, minute, nil
}

// Resolve turns a DD/MM date and HH:MM time into a concrete timestamp.
//
// The year is never stored, so it is inferred from now: the date is
// first tried with the current year; if that lands more than 180 whole
// days in the past the user almost certainly meant next year, so the
// year rolls forward. A recent past date (up to 180 days) keeps the
// current year, as does any future date.
//
// Resolve is a pure function of its three inputs.
func Resolve(dateStr, timeStr string, now time.Time) (time.Time, error) {
	day, month, err := parseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	hour, minute, err := parseTime(timeStr)
	if err != nil {
		return time.Time{}, err
	}

	year := now.Year()
	candidate := time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())

	daysPast := int(now.Sub(candidate).Hours() / 24)
	if daysPast > yearRolloverDays {
		year++
		candidate = time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())
	}

	// time.Date normalizes nonexistent dates (31/02 becomes 02/03 or
	// 03/03), so a round-trip mismatch means the date does not exist
	// in the resolved year.
	if candidate.Day() != day || candidate.Month() != time.Month(month) {
		return time.Time{}, fmt.Errorf("%w: data %q não existe no ano %d", ErrInvalidFormat, dateStr, year)
	}

	return candidate, nil
}

// Today returns today's date in DD/MM format.
func Today(now time.Time) string {
	return now.Format("02/01")
}

// Tomorrow returns tomorrow's date in DD/MM format.
func Tomorrow(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("02/01")
}
