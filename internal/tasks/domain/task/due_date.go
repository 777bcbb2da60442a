package task

import "regexp"

// DueDateLayout is the accepted due date shape.
const DueDateLayout = "YYYY-MM-DD"

var dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDueDate reports whether s has the YYYY-MM-DD shape. Only the digit
// layout is checked, so "2024-13-45" passes. The empty string is not a valid
// date; callers treat it as "no due date" before validating.
func IsValidDueDate(s string) bool {
	return dueDatePattern.MatchString(s)
}
