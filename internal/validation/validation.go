// Package validation checks incoming DTOs before they reach the store.
//
// Each field has an ordered list of rules. Every rule of every field is evaluated and the
// failures are collected per field, so a single response reports all problems at once.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Errors maps a JSON field name to its failure messages.
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add records msg for field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Err returns e as an error, or nil when there are no failures.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

type rule[T any] struct {
	check   func(T) bool
	message string
}

// apply evaluates every rule against value and records failures under field.
func apply[T any](errs Errors, field string, value T, rules ...rule[T]) {
	for _, r := range rules {
		if !r.check(value) {
			errs.Add(field, r.message)
		}
	}
}

func notEmpty(msg string) rule[string] {
	return rule[string]{check: func(s string) bool { return strings.TrimSpace(s) != "" }, message: msg}
}

func maxLen(n int, msg string) rule[string] {
	return rule[string]{check: func(s string) bool { return utf8.RuneCountInString(s) <= n }, message: msg}
}

// lengthBetween passes empty strings so a missing value is only reported by notEmpty.
func lengthBetween(lo, hi int, msg string) rule[string] {
	return rule[string]{check: func(s string) bool {
		if s == "" {
			return true
		}
		n := utf8.RuneCountInString(s)
		return n >= lo && n <= hi
	}, message: msg}
}

func onlyRunes(allowed func(rune) bool, msg string) rule[string] {
	return rule[string]{check: func(s string) bool {
		for _, r := range s {
			if !allowed(r) {
				return false
			}
		}
		return true
	}, message: msg}
}

func notNil[T any](msg string) rule[[]T] {
	return rule[[]T]{check: func(v []T) bool { return v != nil }, message: msg}
}

// ImagePathPrefix is the directory every stored image path starts with.
const ImagePathPrefix = "Images/"

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// IsImagePath reports whether path points into the image directory with an accepted extension.
func IsImagePath(path string) bool {
	if !strings.HasPrefix(path, ImagePathPrefix) {
		return false
	}
	for _, ext := range imageExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func imageURLRules() []rule[string] {
	return []rule[string]{
		notEmpty("Image URL is required"),
		maxLen(200, "Image URL cannot exceed 200 characters"),
		{check: IsImagePath, message: "Image URL must be a valid path"},
	}
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNameRune(r rune) bool {
	return isASCIILetter(r) || r == ' '
}

const titlePunctuation = "~-.,!()':&?"

func isThemeTitleRune(r rune) bool {
	return isASCIILetter(r) || isASCIIDigit(r) || r == ' ' || strings.ContainsRune(titlePunctuation, r)
}
