package clock

import "strings"

// displayTimeLength is the character length of an HH:MM:SS time.
const displayTimeLength = 8

// FormatDateForDisplay reorders a YYYY-MM-DD date to DD/MM/YYYY.
//
// The input is not validated. Missing parts render empty and parts past the
// third are ignored, so malformed input yields a malformed result.
func FormatDateForDisplay(date string) string {
	parts := strings.Split(date, "-")
	part := func(idx int) string {
		if idx < len(parts) {
			return parts[idx]
		}
		return ""
	}

	return part(2) + "/" + part(1) + "/" + part(0)
}

// FormatTimeForDisplay returns the first 8 characters of the provided time,
// or the time unchanged if it is shorter.
func FormatTimeForDisplay(t string) string {
	count := 0
	for idx := range t {
		if count == displayTimeLength {
			return t[:idx]
		}
		count++
	}

	return t
}
