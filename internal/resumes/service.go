package resumes

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
)

// TextExtractor pulls plain text out of an uploaded document payload.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// Upload is one document submitted for processing.
type Upload struct {
	FileName string
	Data     []byte
}

// Service contains the batch processing logic for resumes.
type Service struct {
	Repo      BatchRepo
	Extractor TextExtractor
}

// Process runs field extraction and classification over the uploads, one at a
// time in upload order, and stores the resulting batch. A document that cannot
// be read is logged and degrades to an empty-text record; it never aborts the
// rest of the batch.
func (s *Service) Process(ctx context.Context, uploads []Upload) (Batch, error) {
	if len(uploads) == 0 {
		return Batch{}, ErrInvalidInput
	}

	start := time.Now()
	batch := Batch{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Records:   make([]Record, 0, len(uploads)),
	}
	for _, up := range uploads {
		batch.Records = append(batch.Records, s.buildRecord(up))
	}

	if err := s.Repo.Create(ctx, batch); err != nil {
		return Batch{}, err
	}

	metrics.IncBatchesProcessed()
	metrics.AddResumesProcessed(len(batch.Records))
	metrics.ObserveBatchDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)

	matched, unmatched := batch.Partition()
	telemetry.Info("batch.processed", map[string]any{
		"batch_id": batch.ID,
		"total":    len(batch.Records),
		"selected": len(matched),
		"rejected": len(unmatched),
	})
	return batch, nil
}

// Get returns a previously processed batch.
func (s *Service) Get(ctx context.Context, batchID string) (Batch, error) {
	if strings.TrimSpace(batchID) == "" {
		return Batch{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, batchID)
}

// Summarize returns aggregate counts for a batch.
func (s *Service) Summarize(ctx context.Context, batchID string) (Summary, error) {
	batch, err := s.Get(ctx, batchID)
	if err != nil {
		return Summary{}, err
	}
	matched, unmatched := batch.Partition()
	return Summary{
		BatchID:     batch.ID,
		Total:       len(batch.Records),
		Selected:    len(matched),
		Rejected:    len(unmatched),
		TitleCounts: batch.TitleCounts(),
	}, nil
}

func (s *Service) buildRecord(up Upload) Record {
	text, err := s.Extractor.ExtractText(up.Data)
	if err != nil {
		telemetry.Error("resume.extract_failed", map[string]any{
			"file_name": up.FileName,
			"error":     err.Error(),
		})
		text = ""
	}

	name := ExtractField(text, "Name")
	if name == "" {
		name = nameFromFileName(up.FileName)
	}

	rec := Record{
		ID:              uuid.NewString(),
		FileName:        up.FileName,
		Name:            name,
		Skills:          ExtractField(text, "resume_skills"),
		Projects:        ExtractField(text, "Projects"),
		ExperienceYears: ExtractExperience(text),
		Email:           ExtractField(text, "Email"),
	}
	rec.Title = Classify(rec.Skills, rec.Projects)
	return rec
}

// nameFromFileName derives a display name from the uploaded file name with
// the extension stripped and words title-cased.
func nameFromFileName(fileName string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = strings.TrimSpace(base)
	if base == "" {
		return ""
	}
	return cases.Title(language.English).String(base)
}
