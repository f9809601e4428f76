// Package dates converts delivery dates between the store API wire form
// (dd.mm.yyyy) and the ISO form used by date inputs (yyyy-mm-dd).
package dates

import "strings"

// ToWire converts yyyy-mm-dd into dd.mm.yyyy. Malformed input yields "".
func ToWire(iso string) string {
	parts := strings.Split(iso, "-")
	if len(parts) != 3 || !allDigits(parts) || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return ""
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// ToInput converts dd.mm.yyyy into yyyy-mm-dd. Values already in ISO form
// pass through unchanged; otherwise malformed input yields "".
func ToInput(wire string) string {
	if IsISO(wire) {
		return wire
	}
	parts := strings.Split(wire, ".")
	if len(parts) != 3 || !allDigits(parts) || len(parts[0]) != 2 || len(parts[1]) != 2 || len(parts[2]) != 4 {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// IsISO reports whether the value matches the strict yyyy-mm-dd pattern.
func IsISO(v string) bool {
	parts := strings.Split(v, "-")
	return len(parts) == 3 && allDigits(parts) && len(parts[0]) == 4 && len(parts[1]) == 2 && len(parts[2]) == 2
}

func allDigits(parts []string) bool {
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, r := range part {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}
