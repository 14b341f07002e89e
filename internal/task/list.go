package task

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"taskpad/internal/kvstore"
)

// List owns the ordered task collection and the current filter. The
// collection is newest-first and is rewritten to the store after every
// mutation; the filter is transient and never persisted.
type List struct {
	store  kvstore.Store
	logger *log.Logger
	tasks  []Task
	filter Filter
	nextID int64
}

// Counts summarizes the collection for display.
type Counts struct {
	Active    int
	Completed int
}

// NewList loads the persisted collection from the store. A missing or
// corrupt blob yields an empty collection; the corruption is logged and
// never surfaced further.
func NewList(store kvstore.Store, logger *log.Logger) *List {
	l := &List{
		store:  store,
		logger: logger,
		filter: FilterAll,
		nextID: 1,
	}

	data, found, err := store.Get(TasksKey)
	if err != nil {
		logger.Warn("could not read saved tasks, starting empty", "err", err)
		return l
	}
	if !found {
		return l
	}

	tasks, err := DecodeTasks(data)
	if err != nil {
		logger.Warn("saved tasks are unreadable, starting empty", "err", err)
		return l
	}

	l.tasks = tasks
	for _, t := range tasks {
		if t.ID >= l.nextID {
			l.nextID = t.ID + 1
		}
	}
	return l
}

// Add prepends a new task. Blank or whitespace-only text is rejected
// and the collection is left unchanged; the return value reports
// whether a task was created.
func (l *List) Add(text string, priority Priority) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	t := Task{
		ID:        l.nextID,
		Text:      text,
		Completed: false,
		Priority:  priority,
		CreatedAt: time.Now().UTC(),
	}
	l.nextID++
	l.tasks = append([]Task{t}, l.tasks...)
	l.persist()
	return true
}

// Toggle flips the completed flag of the task with the given id. An
// unknown id is a no-op.
func (l *List) Toggle(id int64) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks[i].Completed = !l.tasks[i].Completed
			l.persist()
			return
		}
	}
}

// Delete removes the task with the given id, preserving the relative
// order of the rest. An unknown id is a no-op.
func (l *List) Delete(id int64) {
	for i := range l.tasks {
		if l.tasks[i].ID == id {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			l.persist()
			return
		}
	}
}

// ClearCompleted removes every completed task.
func (l *List) ClearCompleted() {
	kept := l.tasks[:0]
	for _, t := range l.tasks {
		if !t.Completed {
			kept = append(kept, t)
		}
	}
	l.tasks = kept
	l.persist()
}

// SetFilter updates the transient filter.
func (l *List) SetFilter(f Filter) {
	l.filter = ParseFilter(string(f))
}

// Filter returns the current filter.
func (l *List) Filter() Filter {
	return l.filter
}

// Visible returns the tasks matching the current filter in collection
// order. The slice is freshly built on every call.
func (l *List) Visible() []Task {
	out := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.Matches(l.filter) {
			out = append(out, t)
		}
	}
	return out
}

// Tasks returns the full collection in order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Len returns the collection size.
func (l *List) Len() int {
	return len(l.tasks)
}

// Counts returns per-status totals.
func (l *List) Counts() Counts {
	var c Counts
	for _, t := range l.tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// persist rewrites the full collection through the store. Failures are
// logged and swallowed; the in-memory state stays authoritative for the
// session.
func (l *List) persist() {
	data, err := EncodeTasks(l.tasks)
	if err != nil {
		l.logger.Warn("could not encode tasks", "err", err)
		return
	}
	if err := l.store.Put(TasksKey, data); err != nil {
		l.logger.Warn("could not save tasks", "err", err)
	}
}
