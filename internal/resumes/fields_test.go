package resumes

import "testing"

func TestExtractField(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		label string
		want  string
	}{
		{"simple match", "Name: Alice\nEmail: a@b.c", "Name", "Alice"},
		{"case insensitive label", "name: Bob", "Name", "Bob"},
		{"missing label", "Projects: site builder", "Email", ""},
		{"first occurrence wins", "Email: first@x.io\nEmail: second@x.io", "Email", "first@x.io"},
		{"value trimmed", "Name:    Carol   ", "Name", "Carol"},
		{"stops at end of line", "Name: Dave\nextra line", "Name", "Dave"},
		{"blank value spills to next line", "Name:\nEmail: d@x.io", "Name", "Email: d@x.io"},
		{"empty value at end of text", "Name:", "Name", ""},
		{"empty text", "", "Name", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractField(tt.text, tt.label); got != tt.want {
				t.Fatalf("ExtractField(%q, %q) = %q, want %q", tt.text, tt.label, got, tt.want)
			}
		})
	}
}

func TestExtractExperience(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"simple match", "experience_years: 5", 5},
		{"case insensitive", "Experience_Years: 12", 12},
		{"absent field", "no such field", 0},
		{"non numeric value", "experience_years: five", 0},
		{"embedded in text", "header\nexperience_years: 3\nfooter", 3},
		{"empty text", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractExperience(tt.text); got != tt.want {
				t.Fatalf("ExtractExperience(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
