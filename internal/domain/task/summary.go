package task

// Filter holds optional filter criteria for listing tasks.
// A zero-value Status means "all statuses".
type Filter struct {
	Status Status
}

// Matches reports whether t satisfies the filter.
func (f Filter) Matches(t *Task) bool {
	return f.Status == "" || t.Status == f.Status
}

// Apply returns the tasks that satisfy the filter, preserving order.
func (f Filter) Apply(tasks []Task) []Task {
	if f.Status == "" {
		return tasks
	}
	out := make([]Task, 0, len(tasks))
	for i := range tasks {
		if f.Matches(&tasks[i]) {
			out = append(out, tasks[i])
		}
	}
	return out
}

// Summary counts a caller's tasks by state. Overdue tasks are also counted
// as pending.
type Summary struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int
}

// Summarize computes the dashboard counters for tasks as of today.
func Summarize(tasks []Task, today Date) Summary {
	s := Summary{Total: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case StatusPending:
			s.Pending++
		case StatusCompleted:
			s.Completed++
		}
		if tasks[i].IsOverdue(today) {
			s.Overdue++
		}
	}
	return s
}
