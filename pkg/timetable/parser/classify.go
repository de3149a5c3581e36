package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Bhup-GitHUB/tt-new/pkg/timetable/models"
)

var (
	lecturePattern         = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}` + spaceClass + `?L`)
	tutorialPattern        = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}` + spaceClass + `?T`)
	combinedLecturePattern = regexp.MustCompile(`^([A-Z]{3}[0-9]{3}(/[A-Z]{3}[0-9]{3})+)` + spaceClass + `?L`)
)

// colorRules are tried in order; the first match wins.
var colorRules = []struct {
	pattern *regexp.Regexp
	color   models.Color
}{
	{lecturePattern, models.ColorDanger},
	{tutorialPattern, models.ColorPrimary},
	{combinedLecturePattern, models.ColorInfo},
}

// minSuffixedLength is the length a cleaned code must exceed before a
// trailing L, P or T is treated as a section suffix.
const minSuffixedLength = 6

// Classify turns one raw cell into a timetable entry.
func Classify(cell string, names CourseNames) models.Entry {
	if trimSpace(cell) == "" {
		return models.Entry{Course: "", Color: models.ColorSuccess}
	}
	return models.Entry{
		Course: NormalizeCourseCode(cell, names),
		Color:  ClassifyColor(cell),
	}
}

// NormalizeCourseCode maps a raw course cell to its display name. The code is
// cleaned of slashes and whitespace and a section suffix is dropped; if names
// knows the cleaned code its full name is returned, otherwise raw is returned
// unchanged.
func NormalizeCourseCode(raw string, names CourseNames) string {
	if names == nil {
		return raw
	}
	if name, ok := names.Lookup(CleanCourseCode(raw)); ok && name != "" {
		return name
	}
	return raw
}

// CleanCourseCode removes slashes and whitespace from raw and strips one
// trailing L, P or T when the result is longer than six characters.
func CleanCourseCode(raw string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '/' || isSpace(r) {
			return -1
		}
		return r
	}, raw)

	if utf8.RuneCountInString(cleaned) > minSuffixedLength {
		switch cleaned[len(cleaned)-1] {
		case 'L', 'P', 'T':
			cleaned = cleaned[:len(cleaned)-1]
		}
	}
	return cleaned
}

// ClassifyColor picks the display color for a raw (untrimmed) course cell.
func ClassifyColor(raw string) models.Color {
	for _, rule := range colorRules {
		if rule.pattern.MatchString(raw) {
			return rule.color
		}
	}
	return models.ColorSuccess
}
