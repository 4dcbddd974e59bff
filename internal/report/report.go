package report

import (
	"context"

	"github.com/TWRT/section-reporter/internal/models"
)

// Aggregator is what the builder needs from the report service.
type Aggregator interface {
	CurrentMonth() string
	PendingCount(ctx context.Context) (int, error)
	IncomingByPriority(ctx context.Context) ([]models.GroupCount, error)
	TasksByPriority(ctx context.Context) ([]models.GroupCount, error)
	TasksByAssignee(ctx context.Context) ([]models.GroupCount, error)
}

// Outcome is a section's result: either a value or the error that produced it.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Report holds one outcome per section. A failed section carries its error
// here and renders as an inline error line; it never suppresses the others.
type Report struct {
	Month      string
	Pending    Outcome[int]
	Incoming   Outcome[[]models.GroupCount]
	ByPriority Outcome[[]models.GroupCount]
	ByAssignee Outcome[[]models.GroupCount]
}

// Build runs every aggregation in the fixed section order, each to completion
// before the next begins.
func Build(ctx context.Context, agg Aggregator) Report {
	var r Report
	r.Month = agg.CurrentMonth()
	r.Pending.Value, r.Pending.Err = agg.PendingCount(ctx)
	r.Incoming.Value, r.Incoming.Err = agg.IncomingByPriority(ctx)
	r.ByPriority.Value, r.ByPriority.Err = agg.TasksByPriority(ctx)
	r.ByAssignee.Value, r.ByAssignee.Err = agg.TasksByAssignee(ctx)
	return r
}

// SectionErrors counts the sections that failed, for the run ledger.
func (r Report) SectionErrors() int {
	count := 0
	for _, err := range []error{r.Pending.Err, r.Incoming.Err, r.ByPriority.Err, r.ByAssignee.Err} {
		if err != nil {
			count++
		}
	}
	return count
}
