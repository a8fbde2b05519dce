package task

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidDate is returned by Store.Add when the date fails IsValidDate.
var ErrInvalidDate = errors.New("invalid date")

// ErrDuplicateTask is returned by Store.Add when the date already holds a
// task with the same description.
var ErrDuplicateTask = errors.New("task already scheduled for this date")

// Entry groups the tasks scheduled on one date. Tasks are kept
// newest-first.
type Entry struct {
	Date  Date
	tasks []*Task
}

// Tasks returns the entry's tasks, most recently added first.
// The returned slice is a copy; the tasks themselves are shared.
func (e *Entry) Tasks() []*Task {
	return slices.Clone(e.tasks)
}

// find returns the task whose description is an exact match, or nil.
func (e *Entry) find(description string) *Task {
	for _, t := range e.tasks {
		if t.Description == description {
			return t
		}
	}
	return nil
}

// Store is the date-indexed schedule. The zero value is not usable; create
// one with NewStore. A Store is not safe for concurrent use.
type Store struct {
	// entries is ordered newest-first: a date seen for the first time is
	// placed at the front.
	entries []*Entry
	byDate  map[Date]*Entry
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{byDate: make(map[Date]*Entry)}
}

// Add schedules a task on d.
//
// If d is not a valid date ErrInvalidDate is returned and nothing changes.
// If d already has a task with the same description ErrDuplicateTask is
// returned and the existing task is left untouched.
// Priority and recurrence are stored as given.
func (s *Store) Add(d Date, description string, priority Priority, recurrence string) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDate, d.Short())
	}

	e := s.byDate[d]
	if e == nil {
		e = &Entry{Date: d}
		s.byDate[d] = e
		s.entries = slices.Insert(s.entries, 0, e)
	}

	if e.find(description) != nil {
		return fmt.Errorf("%w: %q on %s", ErrDuplicateTask, description, d.Short())
	}

	t := &Task{
		Description: description,
		Priority:    priority,
		Recurrence:  recurrence,
	}
	e.tasks = slices.Insert(e.tasks, 0, t)
	return nil
}

// Entry returns the entry for d, or nil if no task was ever added on d.
func (s *Store) Entry(d Date) *Entry {
	return s.byDate[d]
}

// Entries returns every entry in traversal order (most recently created
// date first). Callers must not rely on any relation between this order
// and the dates themselves.
func (s *Store) Entries() []*Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of distinct dates in the store.
func (s *Store) Len() int {
	return len(s.entries)
}

// TaskCount returns the total number of tasks across all dates.
func (s *Store) TaskCount() int {
	n := 0
	for _, e := range s.entries {
		n += len(e.tasks)
	}
	return n
}
