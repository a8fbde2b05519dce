// Package task holds the in-memory schedule: tasks grouped by calendar date,
// plus the priority-sorted and future-date views over them.
package task

// Priority is the urgency label attached to a task. Values are stored
// verbatim; anything outside the three constants below is accepted but
// never ranks ahead of another task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task is a single scheduled item. Description is unique within its date.
type Task struct {
	Description string
	Priority    Priority
	// Recurrence is kept as a label only; it never generates further tasks.
	Recurrence string
}

// Less reports whether a ranks strictly ahead of b.
//
// A "high" task precedes any task that is not "high", and a "medium" task
// precedes a "low" one. Every other pair is unordered, so this is not a
// total order: "medium" < "low" while both are unordered against an
// unrecognised label such as "urgent".
func Less(a, b Priority) bool {
	return (a == PriorityHigh && b != PriorityHigh) ||
		(a == PriorityMedium && b == PriorityLow)
}
