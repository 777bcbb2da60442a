package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/tasklist/internal/tasks/application/queries"
)

// FormatTask renders one task as
// "<description> - <Completed|Pending>[, Due: <date>][, Tags: <tags>]".
func FormatTask(t queries.TaskDTO) string {
	var b strings.Builder
	b.WriteString(t.Description)
	b.WriteString(" - ")
	b.WriteString(t.Status)
	if t.DueDate != "" {
		b.WriteString(", Due: ")
		b.WriteString(t.DueDate)
	}
	if t.Tags != "" {
		b.WriteString(", Tags: ")
		b.WriteString(t.Tags)
	}
	return b.String()
}

func renderTasks(w io.Writer, tasks []queries.TaskDTO) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, msgNoTasks)
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, FormatTask(t))
	}
}
