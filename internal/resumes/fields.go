package resumes

import (
	"regexp"
	"strconv"
	"strings"
)

var experiencePattern = regexp.MustCompile(`(?i)experience_years:\s*(\d+)`)

// ExtractField returns the trimmed text following the first "<label>:"
// (case-insensitive), or "" when the label is absent. Note that a blank
// value lets \s* cross the line break, so the value is taken from the
// next non-blank line. The extracted value is not validated.
func ExtractField(text, label string) string {
	pattern, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(label) + `:\s*(.*)`)
	if err != nil {
		return ""
	}
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// ExtractExperience returns the integer following "experience_years:", or 0
// when the field is absent or malformed.
func ExtractExperience(text string) int {
	match := experiencePattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}
	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	return years
}
