// Package task holds the in-memory task model: the Task record, a staged
// Builder for optional fields, and the ordered Collection that owns tasks
// for the lifetime of a run.
package task

import (
	"github.com/felixgeelhaar/tasklist/internal/shared/domain"
)

// Status represents whether a task is done.
type Status int

const (
	StatusPending Status = iota
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Task is one to-do item. The description is its lookup key and is never
// changed after construction.
type Task struct {
	domain.BaseEntity
	description string
	completed   bool
	dueDate     string
	tags        string
}

// New creates a pending task with no due date and no tags. The description
// is stored verbatim.
func New(description string) Task {
	return Task{
		BaseEntity:  domain.NewBaseEntity(),
		description: description,
	}
}

// Getters

func (t Task) Description() string { return t.description }
func (t Task) IsCompleted() bool   { return t.completed }
func (t Task) DueDate() string     { return t.dueDate }
func (t Task) Tags() string        { return t.tags }
func (t Task) HasDueDate() bool    { return t.dueDate != "" }
func (t Task) HasTags() bool       { return t.tags != "" }

// Status derives the lifecycle status from the completion flag.
func (t Task) Status() Status {
	if t.completed {
		return StatusCompleted
	}
	return StatusPending
}

// MarkCompleted marks the task as done. Idempotent.
func (t *Task) MarkCompleted() {
	if t.completed {
		return
	}
	t.completed = true
	t.Touch()
}

// MarkPending reopens the task. Idempotent.
func (t *Task) MarkPending() {
	if !t.completed {
		return
	}
	t.completed = false
	t.Touch()
}

// SetDueDate overwrites the due date. The value is not validated here;
// see IsValidDueDate.
func (t *Task) SetDueDate(date string) {
	t.dueDate = date
	t.Touch()
}

// SetTags overwrites the tags.
func (t *Task) SetTags(tags string) {
	t.tags = tags
	t.Touch()
}
