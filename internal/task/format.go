package task

import (
	"errors"
	"fmt"
	"io"
)

// User-facing messages.
const (
	MsgInvalidDate  = "invalid date!"
	MsgDuplicate    = "warning: this task is already scheduled for this date!"
	MsgNoFutureTask = "no future tasks found."
)

// AddMessage returns the line reported to the user after Store.Add on d
// returned err.
func AddMessage(d Date, err error) string {
	switch {
	case err == nil:
		return "task added to " + d.Short()
	case errors.Is(err, ErrInvalidDate):
		return MsgInvalidDate
	case errors.Is(err, ErrDuplicateTask):
		return MsgDuplicate
	default:
		return err.Error()
	}
}

// FormatTask renders t as a line of the priority listing.
func FormatTask(t *Task) string {
	return fmt.Sprintf("task: %s | priority: %s | recurrence: %s", t.Description, t.Priority, t.Recurrence)
}

// FormatEntryTask renders t as an indented line under a date header.
func FormatEntryTask(t *Task) string {
	return fmt.Sprintf("  - %s | priority: %s | recurrence: %s", t.Description, t.Priority, t.Recurrence)
}

// FormatEntryHeader renders the header line printed above a date's tasks.
func FormatEntryHeader(d Date) string {
	return "upcoming tasks for " + d.String()
}

// WriteByPriority writes every task in s, ranked by priority, one per line.
// Nothing is written for an empty store.
func WriteByPriority(w io.Writer, s *Store) error {
	for _, t := range s.ByPriority() {
		if _, err := fmt.Fprintln(w, FormatTask(t)); err != nil {
			return err
		}
	}
	return nil
}

// WriteFuture writes each entry dated strictly after current, header first
// and then its tasks. If no entry qualifies MsgNoFutureTask is written.
func WriteFuture(w io.Writer, s *Store, current Date) error {
	entries := s.Future(current)
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, MsgNoFutureTask)
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, FormatEntryHeader(e.Date)); err != nil {
			return err
		}
		for _, t := range e.tasks {
			if _, err := fmt.Fprintln(w, FormatEntryTask(t)); err != nil {
				return err
			}
		}
	}
	return nil
}
