package task

import (
	"fmt"
	"testing"
)

// --- ByPriority --------------------------------------------------------------

func TestByPriority_Empty(t *testing.T) {
	if got := NewStore().ByPriority(); len(got) != 0 {
		t.Errorf("expected no tasks, got %d", len(got))
	}
}

func TestByPriority_HighFirst(t *testing.T) {
	s := NewStore()
	d := NewDate(1, 12, 2024)
	// Added oldest-first; the entry holds them newest-first:
	// high-b, medium, high-a, low.
	mustAdd(t, s, d, "low", PriorityLow, "")
	mustAdd(t, s, d, "high-a", PriorityHigh, "")
	mustAdd(t, s, d, "medium", PriorityMedium, "")
	mustAdd(t, s, d, "high-b", PriorityHigh, "")

	got := descriptions(s.ByPriority())
	want := []string{"high-b", "high-a", "medium", "low"}
	if !equalStrings(got, want) {
		t.Errorf("ByPriority = %v, want %v", got, want)
	}
}

func TestSortByPriority_LowHighMediumHigh(t *testing.T) {
	tasks := []*Task{
		{Description: "1", Priority: PriorityLow},
		{Description: "2", Priority: PriorityHigh},
		{Description: "3", Priority: PriorityMedium},
		{Description: "4", Priority: PriorityHigh},
	}
	sortByPriority(tasks)

	got := descriptions(tasks)
	want := []string{"2", "4", "3", "1"}
	if !equalStrings(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestSortByPriority_StableAmongEqual(t *testing.T) {
	var tasks []*Task
	for i := 0; i < 30; i++ {
		p := PriorityMedium
		if i%3 == 0 {
			p = PriorityHigh
		}
		tasks = append(tasks, &Task{Description: fmt.Sprint(i), Priority: p})
	}
	sortByPriority(tasks)

	var highs, mediums []string
	for _, tk := range tasks {
		if tk.Priority == PriorityHigh {
			highs = append(highs, tk.Description)
		} else {
			mediums = append(mediums, tk.Description)
		}
	}
	for i := 1; i < len(highs); i++ {
		if atoi(t, highs[i]) < atoi(t, highs[i-1]) {
			t.Fatalf("high tasks reordered: %v", highs)
		}
	}
	for i := 1; i < len(mediums); i++ {
		if atoi(t, mediums[i]) < atoi(t, mediums[i-1]) {
			t.Fatalf("medium tasks reordered: %v", mediums)
		}
	}
	if tasks[len(highs)-1].Priority != PriorityHigh || tasks[len(highs)].Priority != PriorityMedium {
		t.Error("all high tasks should precede all medium tasks")
	}
}

// An unrecognised label blocks a medium task from moving ahead of an
// earlier low task: the two are unordered against the label in between.
func TestSortByPriority_UnrecognisedLabelIsABarrier(t *testing.T) {
	tasks := []*Task{
		{Description: "low", Priority: PriorityLow},
		{Description: "urgent", Priority: "urgent"},
		{Description: "medium", Priority: PriorityMedium},
	}
	sortByPriority(tasks)

	got := descriptions(tasks)
	want := []string{"low", "urgent", "medium"}
	if !equalStrings(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestSortByPriority_HighPassesUnrecognised(t *testing.T) {
	tasks := []*Task{
		{Description: "urgent", Priority: "urgent"},
		{Description: "High", Priority: "High"},
		{Description: "high", Priority: PriorityHigh},
	}
	sortByPriority(tasks)

	got := descriptions(tasks)
	want := []string{"high", "urgent", "High"}
	if !equalStrings(got, want) {
		t.Errorf("sorted = %v, want %v", got, want)
	}
}

func TestByPriority_DoesNotMutateStore(t *testing.T) {
	s := NewStore()
	d := NewDate(1, 12, 2024)
	mustAdd(t, s, d, "high", PriorityHigh, "")
	mustAdd(t, s, d, "low", PriorityLow, "")

	_ = s.ByPriority()

	got := descriptions(s.Entry(d).Tasks())
	want := []string{"low", "high"}
	if !equalStrings(got, want) {
		t.Errorf("entry order changed to %v, want %v", got, want)
	}
}

func TestByPriority_RoundTrip(t *testing.T) {
	s := NewStore()
	added := map[string]Task{}
	dates := []Date{NewDate(1, 1, 2024), NewDate(29, 2, 2024), NewDate(31, 12, 2030)}
	prios := []Priority{PriorityHigh, PriorityMedium, PriorityLow, "other"}
	n := 0
	for i, d := range dates {
		for j := 0; j < 4; j++ {
			desc := fmt.Sprintf("task-%d-%d", i, j)
			p := prios[(i+j)%len(prios)]
			mustAdd(t, s, d, desc, p, "none")
			added[desc] = Task{Description: desc, Priority: p, Recurrence: "none"}
			n++
		}
	}

	got := s.ByPriority()
	if len(got) != n {
		t.Fatalf("ByPriority returned %d tasks, want %d", len(got), n)
	}
	seen := map[string]bool{}
	for _, tk := range got {
		want, ok := added[tk.Description]
		if !ok {
			t.Fatalf("unexpected task %q", tk.Description)
		}
		if *tk != want {
			t.Errorf("task = %+v, want %+v", *tk, want)
		}
		if seen[tk.Description] {
			t.Errorf("task %q listed twice", tk.Description)
		}
		seen[tk.Description] = true
	}
}

// --- Future ------------------------------------------------------------------

func TestFuture_StrictlyAfter(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, NewDate(24, 11, 2024), "tomorrow", PriorityLow, "")
	mustAdd(t, s, NewDate(20, 11, 2024), "past", PriorityLow, "")
	mustAdd(t, s, NewDate(23, 11, 2024), "today", PriorityLow, "")

	got := s.Future(NewDate(23, 11, 2024))
	if len(got) != 1 {
		t.Fatalf("expected 1 future entry, got %d", len(got))
	}
	if got[0].Date != NewDate(24, 11, 2024) {
		t.Errorf("future entry = %v, want 24/11/2024", got[0].Date)
	}
}

func TestFuture_None(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, NewDate(1, 1, 2023), "old", PriorityLow, "")
	if got := s.Future(NewDate(23, 11, 2024)); len(got) != 0 {
		t.Errorf("expected no future entries, got %d", len(got))
	}
}

func TestFuture_TraversalOrder(t *testing.T) {
	s := NewStore()
	mustAdd(t, s, NewDate(1, 1, 2026), "a", PriorityLow, "")
	mustAdd(t, s, NewDate(1, 1, 2025), "b", PriorityLow, "")
	mustAdd(t, s, NewDate(1, 6, 2025), "c", PriorityLow, "")

	got := s.Future(NewDate(23, 11, 2024))
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	want := []Date{NewDate(1, 6, 2025), NewDate(1, 1, 2025), NewDate(1, 1, 2026)}
	for i, e := range got {
		if e.Date != want[i] {
			t.Errorf("entry %d = %v, want %v", i, e.Date, want[i])
		}
	}
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	var n int
	if _, err := fmt.Sscan(s, &n); err != nil {
		t.Fatalf("atoi %q: %v", s, err)
	}
	return n
}
