package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TWRT/section-reporter/internal/client"
	"github.com/TWRT/section-reporter/internal/models"
)

// createdAtLayout matches the fixed timestamp format the task API emits.
// The nines tolerate one to nine fractional digits; parseCreatedAt enforces
// that the fraction is present at all, since a zero-padded layout would
// instead demand an exact digit count.
const createdAtLayout = "2006-01-02T15:04:05.999999999Z"

const (
	// Fallback labels for tasks missing the grouped-on field.
	unknownPriority = "Unknown"
	unassigned      = "Unassigned"
)

// ReportService produces the four section aggregations. Each aggregation
// performs its own full fetch with only the fields it needs; the team filter
// is applied inside the fetcher, so every task seen here already matched.
type ReportService struct {
	fetcher       client.SectionTaskFetcher
	sectionId     string
	priorityField string
	now           func() time.Time
}

func NewReportService(fetcher client.SectionTaskFetcher, sectionId, priorityField string) *ReportService {
	return &ReportService{
		fetcher:       fetcher,
		sectionId:     sectionId,
		priorityField: priorityField,
		now:           time.Now,
	}
}

// CurrentMonth returns the UTC year-month the run is executing in, used both
// as the incoming-task window and as the section label in the report.
func (s *ReportService) CurrentMonth() string {
	return s.now().UTC().Format("2006-01")
}

// PendingCount counts the section's incomplete tasks.
func (s *ReportService) PendingCount(ctx context.Context) (int, error) {
	tasks, err := s.fetcher.GetSectionTasks(ctx, s.sectionId, "completed,custom_fields,assignee.name,created_at")
	if err != nil {
		return 0, err
	}

	pending := 0
	for _, task := range tasks {
		if !task.Completed {
			pending++
		}
	}
	return pending, nil
}

// IncomingByPriority groups tasks created in the current UTC month by their
// priority field, ordered by descending count. Tasks without a creation
// timestamp are skipped; a malformed timestamp fails the aggregation.
func (s *ReportService) IncomingByPriority(ctx context.Context) ([]models.GroupCount, error) {
	tasks, err := s.fetcher.GetSectionTasks(ctx, s.sectionId, "custom_fields,created_at")
	if err != nil {
		return nil, err
	}

	currentMonth := s.CurrentMonth()
	counter := models.NewGroupCounter()

	for _, task := range tasks {
		if task.CreatedAt == "" {
			continue
		}

		createdAt, err := parseCreatedAt(task.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at of task %s: %w", task.Id, err)
		}
		if createdAt.UTC().Format("2006-01") != currentMonth {
			continue
		}

		counter.Add(s.priorityOf(task))
	}

	return counter.SortedGroups(), nil
}

// TasksByPriority groups the section's incomplete tasks by their priority
// field, in first-seen order.
func (s *ReportService) TasksByPriority(ctx context.Context) ([]models.GroupCount, error) {
	tasks, err := s.fetcher.GetSectionTasks(ctx, s.sectionId, "custom_fields,completed")
	if err != nil {
		return nil, err
	}

	counter := models.NewGroupCounter()
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		counter.Add(s.priorityOf(task))
	}

	return counter.Groups(), nil
}

// TasksByAssignee groups the section's incomplete tasks by assignee name,
// ordered by descending count. Completed tasks are excluded entirely.
func (s *ReportService) TasksByAssignee(ctx context.Context) ([]models.GroupCount, error) {
	tasks, err := s.fetcher.GetSectionTasks(ctx, s.sectionId, "custom_fields,assignee.name,completed")
	if err != nil {
		return nil, err
	}

	counter := models.NewGroupCounter()
	for _, task := range tasks {
		if task.Completed {
			continue
		}

		name := task.AssigneeName
		if name == "" {
			name = unassigned
		}
		counter.Add(name)
	}

	return counter.SortedGroups(), nil
}

// parseCreatedAt parses a creation timestamp, requiring the fractional
// second the upstream contract fixes. Anything else is a contract violation,
// not a per-task skip.
func parseCreatedAt(value string) (time.Time, error) {
	if !strings.Contains(value, ".") {
		return time.Time{}, fmt.Errorf("missing fractional second in %q", value)
	}
	return time.Parse(createdAtLayout, value)
}

func (s *ReportService) priorityOf(task models.Task) string {
	if display, ok := task.FieldDisplay(s.priorityField); ok && display != "" {
		return display
	}
	return unknownPriority
}
