package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput marks request values that fail to parse. The web adapter
// maps it to a 400 response.
var ErrInvalidInput = errors.New("invalid input")

const dateLayout = "2006-01-02"

func parseID(field, s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidInput, field, s)
	}
	return id, nil
}

func parseCount(field, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidInput, field, s)
	}
	return n, nil
}

// parseAmount treats a blank field as zero, matching the forms which leave
// optional money and weight inputs empty.
func parseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q", ErrInvalidInput, field, s)
	}
	return d, nil
}

// parseDate defaults a blank value to today.
func parseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: date %q", ErrInvalidInput, s)
	}
	return s, nil
}

// parseMonth validates a YYYY-MM value, defaulting to the current month.
func parseMonth(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Now().Format("2006-01"), nil
	}
	if _, err := time.Parse("2006-01", s); err != nil {
		return "", fmt.Errorf("%w: month %q", ErrInvalidInput, s)
	}
	return s, nil
}

// optString returns nil for blank values so the core layer can tell
// "not provided" apart from an explicit empty string.
func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
