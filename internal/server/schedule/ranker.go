// Package schedule orders tasks for the suggestions endpoint. Ranking is a
// pure function over the input slice; it touches no storage.
package schedule

import (
	"sort"
	"time"

	"github.com/dynsched/dynsched/internal/server/models"
)

// sentinelDueDate ranks tasks without a due date last within their
// priority tier.
var sentinelDueDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// Rank returns the tasks ordered by (priority ascending, due date ascending).
// Tasks without a due date sort as if due on 9999-12-31; a zero priority is
// treated as the default. The sort is stable, so tasks equal on both keys
// keep their relative input order. The input slice is not modified.
func Rank(tasks []*models.Task) []*models.Task {
	ranked := make([]*models.Task, len(tasks))
	copy(ranked, tasks)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := effectivePriority(ranked[i]), effectivePriority(ranked[j])
		if pi != pj {
			return pi < pj
		}
		return effectiveDueDate(ranked[i]).Before(effectiveDueDate(ranked[j]))
	})

	return ranked
}

func effectivePriority(t *models.Task) int {
	if t.Priority == 0 {
		return models.DefaultTaskPriority
	}
	return t.Priority
}

func effectiveDueDate(t *models.Task) time.Time {
	if t.DueDate == nil {
		return sentinelDueDate
	}
	return *t.DueDate
}
