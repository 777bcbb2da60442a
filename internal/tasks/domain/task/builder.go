package task

// Builder stages optional fields before producing a Task. Each With* call
// mutates the staged task and returns the same builder, so chained calls
// accumulate onto one value.
type Builder struct {
	task Task
}

// NewBuilder starts a builder for a task with the given description.
func NewBuilder(description string) *Builder {
	return &Builder{task: New(description)}
}

// WithDueDate stages a due date.
func (b *Builder) WithDueDate(date string) *Builder {
	b.task.SetDueDate(date)
	return b
}

// WithTags stages tags.
func (b *Builder) WithTags(tags string) *Builder {
	b.task.SetTags(tags)
	return b
}

// Build returns a copy of the staged task. It may be called repeatedly;
// every result is independent of later builder calls and of each other.
// All copies share the staged task's ID.
func (b *Builder) Build() Task {
	return b.task
}
