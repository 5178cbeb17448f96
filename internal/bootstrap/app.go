// Package bootstrap wires application dependencies.
package bootstrap

import (
	"errors"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/export"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/notify"
	"resume-matcher/internal/report"
	"resume-matcher/internal/resumes"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server"
	"resume-matcher/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	Batches    *resumes.Service
	Dispatcher *notify.Service
}

// Build prepares dependencies and the router. When SMTP credentials are
// absent the notify endpoint stays registered but refuses to send.
func Build(cfg config.Config) (*App, error) {
	repo := resumes.NewMemoryRepo()
	batches := &resumes.Service{
		Repo:      repo,
		Extractor: extract.PDF{},
	}

	var mailer notify.Mailer
	smtp, err := notify.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	switch {
	case err == nil:
		mailer = smtp
	case errors.Is(err, notify.ErrNotConfigured):
		telemetry.Info("bootstrap.smtp_not_configured", map[string]any{
			"host": cfg.SMTPHost,
		})
	default:
		return nil, err
	}
	dispatcher := &notify.Service{Mailer: mailer}

	app := &App{
		Config:     cfg,
		Batches:    batches,
		Dispatcher: dispatcher,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:  cfg,
		Batches: resumes.NewHandler(batches, cfg.MaxUploadBytes),
		Export:  export.NewHandler(batches),
		Report:  report.NewHandler(batches),
		Notify:  notify.NewHandler(batches, dispatcher),
	})
	return app, nil
}
