package report

import (
	"fmt"
	"strings"

	"github.com/TWRT/section-reporter/internal/models"
)

// Render formats the report into the message text published to the channel.
// Section order is fixed: pending count, incoming by priority (labelled with
// the run month), by priority, by assignee. The result carries no trailing
// newline: the same text goes to the Slack message body and to stdout, and
// the printer owns the final line break.
func Render(r Report) string {
	var b strings.Builder

	if r.Pending.Err != nil {
		fmt.Fprintf(&b, "Error fetching pending tasks: %v\n", r.Pending.Err)
	} else {
		fmt.Fprintf(&b, "📌 Number of pending tasks in section: %d\n", r.Pending.Value)
	}

	if r.Incoming.Err != nil {
		fmt.Fprintf(&b, "Error fetching incoming tasks by priority: %v\n", r.Incoming.Err)
	} else {
		fmt.Fprintf(&b, "📥 Incoming Tasks grouped by Priority (%s):\n", r.Month)
		if len(r.Incoming.Value) == 0 {
			b.WriteString("   - 0\n")
		} else {
			writeGroups(&b, r.Incoming.Value)
		}
	}

	if r.ByPriority.Err != nil {
		fmt.Fprintf(&b, "Error fetching tasks by priority: %v\n", r.ByPriority.Err)
	} else {
		b.WriteString("🔥 Tasks grouped by Priority:\n")
		writeGroups(&b, r.ByPriority.Value)
	}

	if r.ByAssignee.Err != nil {
		fmt.Fprintf(&b, "Error fetching tasks by assignee: %v\n", r.ByAssignee.Err)
	} else {
		b.WriteString("👥 Tasks grouped by Assignee:\n")
		writeGroups(&b, r.ByAssignee.Value)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeGroups(b *strings.Builder, groups []models.GroupCount) {
	for _, group := range groups {
		fmt.Fprintf(b, "   - %s: %d\n", group.Label, group.Count)
	}
}
