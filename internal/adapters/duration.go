package adapters

import (
	"strings"
	"time"
	"unicode"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// ageUnits maps a unit suffix to its duration. The single-letter forms
// are case-sensitive: m is minutes, M is months. Multi-letter aliases
// are matched after lowercasing everything but the M/month ambiguity
// does not arise there.
var ageUnits = map[string]time.Duration{
	"s":       time.Second,
	"sec":     time.Second,
	"secs":    time.Second,
	"second":  time.Second,
	"seconds": time.Second,
	"m":       time.Minute,
	"min":     time.Minute,
	"mins":    time.Minute,
	"minute":  time.Minute,
	"minutes": time.Minute,
	"h":       time.Hour,
	"hr":      time.Hour,
	"hrs":     time.Hour,
	"hour":    time.Hour,
	"hours":   time.Hour,
	"d":       day,
	"day":     day,
	"days":    day,
	"w":       week,
	"week":    week,
	"weeks":   week,
	"M":       month,
	"month":   month,
	"months":  month,
	"y":       year,
	"year":    year,
	"years":   year,
}

// ParseAge parses a human age expression into a duration. Terms are
// combinable and each consists of a decimal value followed by a unit
// suffix, e.g. "30d", "1y6M2w3d", "90min". Whitespace between terms is
// allowed.
func ParseAge(text string) (time.Duration, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("age expression is empty")
	}
	var total time.Duration
	runes := []rune(trimmed)
	i := 0
	for i < len(runes) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			break
		}
		start := i
		for i < len(runes) && unicode.IsDigit(runes[i]) {
			i++
		}
		if i == start {
			return 0, invalidAge(trimmed, "expected a number at "+string(runes[i:]))
		}
		value := int64(0)
		for _, digit := range runes[start:i] {
			value = value*10 + int64(digit-'0')
		}
		unitStart := i
		for i < len(runes) && unicode.IsLetter(runes[i]) {
			i++
		}
		if i == unitStart {
			return 0, invalidAge(trimmed, "missing unit after "+string(runes[start:unitStart]))
		}
		unit := string(runes[unitStart:i])
		duration, ok := lookupAgeUnit(unit)
		if !ok {
			return 0, invalidAge(trimmed, "unknown unit "+unit)
		}
		total += time.Duration(value) * duration
	}
	if total <= 0 {
		return 0, invalidAge(trimmed, "age must be positive")
	}
	return total, nil
}

func lookupAgeUnit(unit string) (time.Duration, bool) {
	// Single letters keep their case so m (minutes) and M (months)
	// stay distinct; longer aliases are case-insensitive.
	if len(unit) == 1 {
		duration, ok := ageUnits[unit]
		return duration, ok
	}
	duration, ok := ageUnits[strings.ToLower(unit)]
	return duration, ok
}

func invalidAge(text string, detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("invalid age expression " + text + ": " + detail)
}
