package data

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonNumericRegexp = regexp.MustCompile(`[^0-9.]`)

func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// NormalizeHeader trims and lowercases a CSV column name.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

// ParseNumber strips currency symbols, separators and suffixes such as
// "/mo" or "installment" before parsing. Anything left unparseable is
// reported as missing.
func ParseNumber(raw string) *float64 {
	cleaned := nonNumericRegexp.ReplaceAllString(raw, "")
	if cleaned == "" {
		return nil
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ParseCount is ParseNumber truncated to an int.
func ParseCount(raw string) *int {
	n := ParseNumber(raw)
	if n == nil {
		return nil
	}
	v := int(*n)
	return &v
}

// FormatNumber renders n without trailing zeros ("2", "2.5").
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// TitleCase lowercases and capitalises every word, so "WINTER 2025" and
// "winter 2025" both become "Winter 2025".
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}

// Fold is the comparison form used by every categorical filter.
func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// canonicalCount keeps numeric counts comparable ("2.0" and "2" are the
// same bedroom count) while preserving non-numeric labels like "Studio".
func canonicalCount(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return FormatNumber(n)
	}
	return raw
}

// cleanCell treats the textual null markers pandas writes as empty.
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "nan", "none", "null", "<na>":
		return ""
	}
	return s
}
