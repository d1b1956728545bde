package dialog

import (
	"regexp"
	"strconv"
	"strings"
)

// Age bounds for trial lesson registration, inclusive.
const (
	MinAge = 6
	MaxAge = 18
)

// AgeIssue explains why an age input was rejected.
type AgeIssue int

const (
	AgeOK AgeIssue = iota
	AgeNotANumber
	AgeOutOfRange
)

// ParseAge parses and validates an age input. It never panics and never
// returns AgeOK for a value outside [MinAge, MaxAge].
func ParseAge(text string) (int, AgeIssue) {
	age, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, AgeNotANumber
	}
	if age < MinAge || age > MaxAge {
		return 0, AgeOutOfRange
	}
	return age, AgeOK
}

// phonePattern accepts numbers starting with +7 or 8 followed by ten digits
// grouped 3-3-2-2, with optional space or hyphen separators.
var phonePattern = regexp.MustCompile(`^(\+7|8)[\s\-]?(\d{3})[\s\-]?(\d{3})[\s\-]?(\d{2})[\s\-]?(\d{2})$`)

// ValidPhone reports whether the given contact number is acceptable.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
