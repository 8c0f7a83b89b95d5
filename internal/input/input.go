// Package input validates and parses the comma-separated variable and
// minterm lists typed by a user.
package input

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid input")

// ValidateVariables reports whether text is a comma-separated list of names
// made of ASCII letters. Empty text is valid: nothing has been typed yet.
func ValidateVariables(text string) bool {
	return validate(text, isLetter)
}

// ValidateMinterms reports whether text is a comma-separated list of decimal
// numbers. Empty text is valid.
func ValidateMinterms(text string) bool {
	return validate(text, isDigit)
}

// ValidName reports whether name is a single non-empty variable name.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !isLetter(r) {
			return false
		}
	}
	return true
}

func validate(text string, ok func(rune) bool) bool {
	if text == "" {
		return true
	}
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			return false
		}
		for _, r := range part {
			if !ok(r) {
				return false
			}
		}
	}
	return true
}

func isLetter(r rune) bool { return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// ParseVariables splits text into variable names.
func ParseVariables(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(ErrInvalid, "no variables given")
	}
	if !ValidateVariables(text) {
		return nil, errors.Wrapf(ErrInvalid, "variables %q must be letters separated by commas", text)
	}
	return split(text), nil
}

// ParseMinterms splits text into minterm numbers.
func ParseMinterms(text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(ErrInvalid, "no minterms given")
	}
	if !ValidateMinterms(text) {
		return nil, errors.Wrapf(ErrInvalid, "minterms %q must be numbers separated by commas", text)
	}
	var err error
	ms := lo.Map(split(text), func(part string, _ int) int {
		n, perr := strconv.Atoi(part)
		if perr != nil && err == nil {
			err = errors.Wrapf(ErrInvalid, "minterm %s is out of range", part)
		}
		return n
	})
	if err != nil {
		return nil, err
	}
	return ms, nil
}

func split(text string) []string {
	return lo.Map(strings.Split(text, ","), func(part string, _ int) string {
		return strings.TrimSpace(part)
	})
}
