package task

// ByPriority returns every task in the store, ranked by Less.
//
// Tasks are collected entry by entry in traversal order, newest task first
// within each entry, and then stably sorted: tasks that Less leaves
// unordered keep their collected order.
func (s *Store) ByPriority() []*Task {
	var all []*Task
	for _, e := range s.entries {
		all = append(all, e.tasks...)
	}
	sortByPriority(all)
	return all
}

// Future returns the entries whose date is strictly after current, in
// traversal order. An entry dated current itself is excluded.
func (s *Store) Future(current Date) []*Entry {
	var out []*Entry
	for _, e := range s.entries {
		if IsBefore(current, e.Date) {
			out = append(out, e)
		}
	}
	return out
}

// sortByPriority is a stable insertion sort driven by Less. A task moves
// left only past neighbours it strictly precedes, which keeps the result
// well defined even though Less is not a strict weak ordering.
func sortByPriority(tasks []*Task) {
	for i := 1; i < len(tasks); i++ {
		for j := i; j > 0 && Less(tasks[j].Priority, tasks[j-1].Priority); j-- {
			tasks[j], tasks[j-1] = tasks[j-1], tasks[j]
		}
	}
}
