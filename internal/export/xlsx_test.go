package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"resume-matcher/internal/resumes"
)

func TestRecordsXLSX(t *testing.T) {
	records := []resumes.Record{
		{Name: "Alice", Skills: "pandas", Projects: "churn model", ExperienceYears: 4, Email: "alice@example.com", Title: resumes.TitleDataScientist},
		{Name: "Bob", Skills: "react", Projects: "", ExperienceYears: 0, Email: "", Title: resumes.TitleFullStack},
	}

	data, err := RecordsXLSX(records)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][5] != "Title" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][0] != "Alice" || rows[1][3] != "4" || rows[1][5] != resumes.TitleDataScientist {
		t.Fatalf("unexpected first data row %v", rows[1])
	}
	if rows[2][0] != "Bob" {
		t.Fatalf("unexpected second data row %v", rows[2])
	}
}

func TestRecordsXLSXEmptySet(t *testing.T) {
	data, err := RecordsXLSX(nil)
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Candidates")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected only the header row, got %d", len(rows))
	}
}
