package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/TWRT/section-reporter/internal/client/asana"
	"github.com/TWRT/section-reporter/internal/client/slack"
	"github.com/TWRT/section-reporter/internal/config"
	"github.com/TWRT/section-reporter/internal/report"
	"github.com/TWRT/section-reporter/internal/repository"
	"github.com/TWRT/section-reporter/internal/service"
	"github.com/joho/godotenv"
)

// runDeadline bounds the whole run; an unresponsive paged endpoint must not
// stall the report forever.
const runDeadline = 2 * time.Minute

func main() {
	// .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), runDeadline)
	defer cancel()

	var runRepo *repository.RunRepository
	if cfg.DBPath != "" {
		db, err := repository.InitDB(cfg.DBPath)
		if err != nil {
			log.Println("Error opening run history DB:", err)
		} else {
			defer db.Close()
			runRepo = repository.NewRunRepository(db)
			logPreviousRun(runRepo)
		}
	}

	startedAt := time.Now().UTC()

	asanaClient := asana.NewAsanaClient(cfg.AsanaBaseUrl, cfg.AsanaToken, cfg.TeamName)
	reportService := service.NewReportService(asanaClient, cfg.SectionId, cfg.PriorityField)

	rep := report.Build(ctx, reportService)
	text := report.Render(rep)
	fmt.Println(text)

	run := &repository.ReportRun{
		StartedAt:     startedAt,
		SectionErrors: rep.SectionErrors(),
		ReportText:    text,
	}

	if !cfg.SlackConfigured() {
		log.Println("Slack is not configured, skipping publish")
	} else {
		slackClient := slack.NewSlackClient(cfg.SlackPostUrl, cfg.SlackToken)
		if err := slackClient.PostMessage(ctx, cfg.SlackChannelId, text); err != nil {
			// Publish failures are logged, never escalated.
			log.Println("Error publishing report:", err)
			run.PublishError = err.Error()
		} else {
			run.Published = true
			fmt.Println("✅ Report published to Slack!")
		}
	}

	if runRepo != nil {
		if _, err := runRepo.Save(run); err != nil {
			log.Println("Error recording report run:", err)
		}
	}
}

// logPreviousRun surfaces the last recorded run's outcome at startup.
func logPreviousRun(runRepo *repository.RunRepository) {
	runs, err := runRepo.GetRecentRuns(1)
	if err != nil {
		log.Println("Error reading run history:", err)
		return
	}
	if len(runs) == 0 {
		return
	}

	last := runs[0]
	log.Printf("Previous run at %s: %d section errors, published=%t",
		last.StartedAt.Format(time.RFC3339), last.SectionErrors, last.Published)
}
