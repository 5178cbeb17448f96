package resumes

import "time"

// Title labels produced by the classifier. TitleUnknown is the sentinel for
// resumes that matched no category.
const (
	TitleDataScientist = "Data Scientist"
	TitleMLEngineer    = "Machine Learning Engineer"
	TitleFullStack     = "Full Stack Developer"
	TitleWebDesigner   = "Web Designer"
	TitleAIEngineer    = "AI Engineer"
	TitleUIUXDesigner  = "UI/UX Designer"
	TitleGameDesigner  = "Game Designer"
	TitleUnknown       = "Unknown"
)

// Record holds the fields extracted from one uploaded resume. Records are
// immutable once built.
type Record struct {
	ID              string `json:"recordId"`
	FileName        string `json:"fileName"`
	Name            string `json:"name"`
	Skills          string `json:"skills"`
	Projects        string `json:"projects"`
	ExperienceYears int    `json:"experienceYears"`
	Email           string `json:"email"`
	Title           string `json:"title"`
}

// Matched reports whether the classifier produced a concrete category.
func (r Record) Matched() bool {
	return r.Title != TitleUnknown
}

// Batch is one processing run over a set of uploaded resumes. It lives only
// in memory for the duration of a session.
type Batch struct {
	ID        string    `json:"batchId"`
	CreatedAt time.Time `json:"createdAt"`
	Records   []Record  `json:"records"`
}

// Partition splits records into matched and unmatched sets, preserving
// upload order within each.
func (b Batch) Partition() (matched, unmatched []Record) {
	for _, rec := range b.Records {
		if rec.Matched() {
			matched = append(matched, rec)
		} else {
			unmatched = append(unmatched, rec)
		}
	}
	return matched, unmatched
}

// TitleCounts returns the frequency of every title label in the batch,
// including the unknown sentinel.
func (b Batch) TitleCounts() map[string]int {
	counts := make(map[string]int, len(b.Records))
	for _, rec := range b.Records {
		counts[rec.Title]++
	}
	return counts
}

// Summary aggregates a batch for reporting.
type Summary struct {
	BatchID     string         `json:"batchId"`
	Total       int            `json:"total"`
	Selected    int            `json:"selected"`
	Rejected    int            `json:"rejected"`
	TitleCounts map[string]int `json:"titleCounts"`
}
