package notify

import (
	"context"
	"fmt"

	"resume-matcher/internal/resumes"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
)

const (
	selectedSubject = "Congratulations! You've Been Selected"
	rejectedSubject = "Application Update"
	rejectedBody    = "Sorry, your profile is not matching this job. We will meet soon."
)

// Service dispatches candidate emails over a batch, sequentially, one message
// per record with a non-empty address.
type Service struct {
	Mailer Mailer
}

// Result counts successful sends per record set.
type Result struct {
	SelectedSent int `json:"selectedSent"`
	RejectedSent int `json:"rejectedSent"`
}

// Dispatch sends a congratulatory message to every matched record and a
// rejection message to every unmatched record. A failed send is logged as a
// warning, excluded from the counts, and does not stop the remaining sends.
// With no mailer configured it fails as a whole before any send.
func (s *Service) Dispatch(ctx context.Context, batch resumes.Batch) (Result, error) {
	if s.Mailer == nil {
		return Result{}, ErrNotConfigured
	}

	matched, unmatched := batch.Partition()

	var res Result
	for _, rec := range matched {
		body := fmt.Sprintf("Hi %s, you've been selected for the role: %s!", rec.Name, rec.Title)
		if s.send(ctx, batch.ID, rec, selectedSubject, body) {
			res.SelectedSent++
		}
	}
	for _, rec := range unmatched {
		if s.send(ctx, batch.ID, rec, rejectedSubject, rejectedBody) {
			res.RejectedSent++
		}
	}

	telemetry.Info("notify.dispatched", map[string]any{
		"batch_id":      batch.ID,
		"selected_sent": res.SelectedSent,
		"rejected_sent": res.RejectedSent,
	})
	return res, nil
}

func (s *Service) send(ctx context.Context, batchID string, rec resumes.Record, subject, body string) bool {
	if rec.Email == "" {
		return false
	}
	if err := s.Mailer.Send(ctx, rec.Email, subject, body); err != nil {
		telemetry.Warn("notify.send_failed", map[string]any{
			"batch_id": batchID,
			"to":       rec.Email,
			"error":    err.Error(),
		})
		metrics.IncEmailsFailed()
		return false
	}
	metrics.IncEmailsSent()
	return true
}
