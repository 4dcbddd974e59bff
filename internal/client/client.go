package client

import (
	"context"

	"github.com/TWRT/section-reporter/internal/models"
)

type SectionTaskFetcher interface {
	GetSectionTasks(ctx context.Context, sectionId, optFields string) ([]models.Task, error)
}

type MessagePublisher interface {
	PostMessage(ctx context.Context, channelId, text string) error
}
