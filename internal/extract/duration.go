// Package extract provides the shared, stateless field parsers used by
// every site adapter. Parsers accept whatever shape a source emits and
// degrade to zero values; none of them return errors.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	isoDurationRe  = regexp.MustCompile(`^P(?:(\d+)D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
	humanHoursRe   = regexp.MustCompile(`(\d+)\s*(?:hours?|hrs?|h)\b`)
	humanMinutesRe = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|m)\b`)
	bareNumberRe   = regexp.MustCompile(`^\d+$`)
)

// DurationMinutes parses an ISO-8601 duration ("PT1H15M") or an
// already-human string ("1 hr 15 min", "45 minutes", "30") into whole
// minutes. Unrecognized input yields 0.
func DurationMinutes(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if m := isoDurationRe.FindStringSubmatch(strings.ToUpper(s)); m != nil {
		days := atoiOrZero(m[1])
		hours := atoiOrZero(m[2])
		minutes := atoiOrZero(m[3])
		seconds := atoiOrZero(m[4])
		total := days*24*60 + hours*60 + minutes
		if seconds >= 30 {
			total++
		}
		return total
	}

	lower := strings.ToLower(s)
	if bareNumberRe.MatchString(lower) {
		return atoiOrZero(lower)
	}

	total := 0
	if m := humanHoursRe.FindStringSubmatch(lower); m != nil {
		total += atoiOrZero(m[1]) * 60
	}
	if m := humanMinutesRe.FindStringSubmatch(lower); m != nil {
		total += atoiOrZero(m[1])
	}
	return total
}

// HumanDuration renders a duration string in the "1 hr 15 min" form the
// response surface uses. ISO input is converted; human input is passed
// through as-is; unparseable input comes back empty.
func HumanDuration(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(strings.ToUpper(s), "P") {
		if DurationMinutes(s) > 0 {
			return s
		}
		return ""
	}
	return FormatMinutes(DurationMinutes(s))
}

// FormatMinutes renders whole minutes as "2 hr 5 min" style text.
func FormatMinutes(minutes int) string {
	if minutes <= 0 {
		return ""
	}
	h, m := minutes/60, minutes%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d hr %d min", h, m)
	case h > 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
