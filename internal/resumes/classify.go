package resumes

import (
	"regexp"
	"strings"
)

type categoryRule struct {
	pattern *regexp.Regexp
	label   string
}

// categoryRules is evaluated in order with first-match-wins semantics. The
// order is load-bearing: a resume matching several categories always gets the
// earliest label, so reordering changes classification results.
var categoryRules = []categoryRule{
	{regexp.MustCompile(`\b(data science|pandas|matplotlib|data analyst)\b`), TitleDataScientist},
	{regexp.MustCompile(`\b(machine learning|regression|classification|sklearn)\b`), TitleMLEngineer},
	{regexp.MustCompile(`\b(full stack|react|node\.js|frontend|backend)\b`), TitleFullStack},
	{regexp.MustCompile(`\b(web design|html|css|javascript|web designer)\b`), TitleWebDesigner},
	{regexp.MustCompile(`\b(artificial intelligence|deep learning)\b`), TitleAIEngineer},
	{regexp.MustCompile(`\b(ui/ux|figma|adobe xd|user interface|user experience)\b`), TitleUIUXDesigner},
	{regexp.MustCompile(`\b(game dev|unity|unreal|game design|game developer)\b`), TitleGameDesigner},
}

// Classify maps skills and projects text to exactly one title label, or
// TitleUnknown when no rule matches.
func Classify(skills, projects string) string {
	combined := strings.ToLower(skills + " " + projects)
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(combined) {
			return rule.label
		}
	}
	return TitleUnknown
}
