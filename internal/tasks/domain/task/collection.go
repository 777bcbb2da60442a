package task

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidFilter = errors.New("invalid task filter")
)

// Filter selects a subsequence of the collection.
type Filter int

const (
	FilterAll Filter = iota
	FilterCompleted
	FilterPending
)

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "all"
	case FilterCompleted:
		return "completed"
	case FilterPending:
		return "pending"
	default:
		return "unknown"
	}
}

// Matches reports whether t belongs to the filtered view.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.IsCompleted()
	case FilterPending:
		return !t.IsCompleted()
	default:
		return true
	}
}

// ParseFilter converts a filter name into a Filter. The empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "pending", "open":
		return FilterPending, nil
	default:
		return FilterAll, fmt.Errorf("%w: %q", ErrInvalidFilter, s)
	}
}

// Collection is the ordered set of tasks for one run. Insertion order is
// display order and duplicate descriptions are allowed. The collection owns
// its tasks; every read hands out copies.
type Collection struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{tasks: make([]Task, 0)}
}

// Add appends a task.
func (c *Collection) Add(t Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = append(c.tasks, t)
}

// MarkCompleted completes the first task with the given description and
// returns a copy of it. Later tasks sharing the description are untouched.
//
// NOTE: completion is first-match while Delete is all-match. Callers rely on
// this asymmetry, so keep both policies as they are.
func (c *Collection) MarkCompleted(description string) (Task, error) {
	return c.updateFirst(description, (*Task).MarkCompleted)
}

// MarkPending reopens the first task with the given description.
func (c *Collection) MarkPending(description string) (Task, error) {
	return c.updateFirst(description, (*Task).MarkPending)
}

func (c *Collection) updateFirst(description string, apply func(*Task)) (Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.tasks {
		if c.tasks[i].description == description {
			apply(&c.tasks[i])
			return c.tasks[i], nil
		}
	}
	return Task{}, fmt.Errorf("%w: %q", ErrTaskNotFound, description)
}

// Delete removes every task with the given description and returns the
// removed tasks in their original order. Survivors keep their relative order.
func (c *Collection) Delete(description string) ([]Task, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var removed []Task
	kept := c.tasks[:0]
	for _, t := range c.tasks {
		if t.description == description {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	if len(removed) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrTaskNotFound, description)
	}

	clear(c.tasks[len(kept):])
	c.tasks = kept
	return removed, nil
}

// List returns the tasks matching f in insertion order.
func (c *Collection) List(f Filter) []Task {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// All returns every task in insertion order.
func (c *Collection) All() []Task { return c.List(FilterAll) }

// Completed returns the completed tasks in insertion order.
func (c *Collection) Completed() []Task { return c.List(FilterCompleted) }

// Pending returns the pending tasks in insertion order.
func (c *Collection) Pending() []Task { return c.List(FilterPending) }

// Len returns the number of tasks.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tasks)
}
