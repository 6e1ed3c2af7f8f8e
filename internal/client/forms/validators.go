package forms

import (
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Check inspects the value of its field (and, when needed, the rest of the
// form) and returns an error message, or "" when satisfied.
type Check func(v string, all Values) string

// Required fails when the trimmed value is empty.
func Required(msg string) Check {
	return func(v string, _ Values) string {
		if strings.TrimSpace(v) == "" {
			return msg
		}
		return ""
	}
}

// Present fails only on the exact empty string; whitespace counts as input.
func Present(msg string) Check {
	return func(v string, _ Values) string {
		if v == "" {
			return msg
		}
		return ""
	}
}

// MinLength fails when v has fewer than n characters, empty included.
func MinLength(n int, msg string) Check {
	return func(v string, _ Values) string {
		if utf8.RuneCountInString(v) < n {
			return msg
		}
		return ""
	}
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Email requires a non-blank value shaped like local@domain.tld.
func Email(requiredMsg, invalidMsg string) Check {
	return func(v string, _ Values) string {
		switch {
		case strings.TrimSpace(v) == "":
			return requiredMsg
		case !emailPattern.MatchString(v):
			return invalidMsg
		default:
			return ""
		}
	}
}

// Matches fails when v differs from the value of field other.
func Matches(other, msg string) Check {
	return func(v string, all Values) string {
		if v != all[other] {
			return msg
		}
		return ""
	}
}

// Choice fails unless v is one of options.
func Choice(options []string, msg string) Check {
	return func(v string, _ Values) string {
		if !slices.Contains(options, v) {
			return msg
		}
		return ""
	}
}

// Optional runs check only on a non-empty value.
func Optional(check Check) Check {
	return func(v string, all Values) string {
		if v == "" {
			return ""
		}
		return check(v, all)
	}
}

// DateLayout is the calendar date format accepted by Date.
const DateLayout = time.DateOnly

// Date fails on a non-empty value that is not a YYYY-MM-DD calendar date.
// Pair it with Present for the "required" case.
func Date(msg string) Check {
	return func(v string, _ Values) string {
		if v == "" {
			return ""
		}
		if _, err := time.Parse(DateLayout, v); err != nil {
			return msg
		}
		return ""
	}
}
