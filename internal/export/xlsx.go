// Package export produces XLSX workbooks for candidate record sets.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"resume-matcher/internal/resumes"
)

const sheetName = "Candidates"

var headers = []string{
	"Name",
	"Skills",
	"Projects",
	"Experience Years",
	"Email",
	"Title",
}

// RecordsXLSX renders the given records as an XLSX workbook and returns its
// bytes. The caller decides the download file name.
func RecordsXLSX(records []resumes.Record) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for row, rec := range records {
		values := []any{
			rec.Name,
			rec.Skills,
			rec.Projects,
			rec.ExperienceYears,
			rec.Email,
			rec.Title,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", row+2, err)
			}
		}
	}

	_ = f.SetColWidth(sheetName, "A", "A", 22) // name
	_ = f.SetColWidth(sheetName, "B", "C", 42) // skills, projects
	_ = f.SetColWidth(sheetName, "D", "D", 16) // experience
	_ = f.SetColWidth(sheetName, "E", "E", 30) // email
	_ = f.SetColWidth(sheetName, "F", "F", 26) // title

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
