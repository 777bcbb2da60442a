package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/felixgeelhaar/tasklist/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tasklist/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tasklist/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasklist/pkg/observability"
	"github.com/spf13/cobra"
)

// ErrInvalidChoice is reported for menu input that is not one of the listed options.
var ErrInvalidChoice = errors.New("invalid menu choice")

const (
	msgNotFound         = "Task not found."
	msgInvalidChoice    = "Invalid choice! Please select a valid option."
	msgEmptyDescription = "Task description cannot be empty."
	msgNoTasks          = "No tasks found."

	promptDescription = "Enter task description: "
	promptDueDate     = "Enter due date (optional, format: " + task.DueDateLayout + "): "
	promptTags        = "Enter tags (optional): "
	promptComplete    = "Enter task description to mark as completed: "
	promptDelete      = "Enter task description to delete: "
)

type menuChoice int

const (
	choiceCreate menuChoice = iota + 1
	choiceComplete
	choiceDelete
	choiceShowAll
	choiceShowCompleted
	choiceShowPending
	choiceQuit
)

var menu = []string{
	"What would you like to do:",
	"1. Create a new Task",
	"2. Mark a Task as Completed",
	"3. Delete a Task",
	"4. Show All Tasks",
	"5. Show Completed Tasks",
	"6. Show Pending Tasks",
	"7. Quit",
}

func parseChoice(line string) (menuChoice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < int(choiceCreate) || n > int(choiceQuit) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, line)
	}
	return menuChoice(n), nil
}

var summaryFilter string

var shellCmd = &cobra.Command{
	Use:     "shell",
	Short:   "Start the interactive task menu",
	Aliases: []string{"interactive"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd)
	},
}

func init() {
	const summaryUsage = "print tasks matching all|completed|pending when the session ends"
	rootCmd.Flags().StringVar(&summaryFilter, "summary", "", summaryUsage)
	shellCmd.Flags().StringVar(&summaryFilter, "summary", "", summaryUsage)
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command) error {
	a := GetApp()
	if !a.Ready() {
		return ErrAppNotInitialized
	}
	l := logger
	if l == nil {
		l = slog.Default()
	}

	shell := NewShell(a, cmd.InOrStdin(), cmd.OutOrStdout(), l)
	if cmd.Flags().Changed("summary") {
		filter, err := task.ParseFilter(summaryFilter)
		if err != nil {
			return err
		}
		shell.WithSummary(filter)
	}
	return shell.Run(cmd.Context())
}

type lineResult struct {
	text string
	err  error
}

// Shell is the numbered task menu. It reads one answer per line and writes
// prompts and listings to out.
type Shell struct {
	app    *App
	in     io.Reader
	out    io.Writer
	logger *slog.Logger

	summary *task.Filter
	lines   <-chan lineResult
}

// NewShell creates a shell over the given reader and writer.
func NewShell(a *App, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{
		app:    a,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// WithSummary makes Run print the tasks matching filter once the session ends.
func (s *Shell) WithSummary(filter task.Filter) *Shell {
	s.summary = &filter
	return s
}

// Run loops over the menu until the user quits, input ends, or ctx is done.
// Read failures and unexpected handler errors are returned. Output write
// errors are not checked.
func (s *Shell) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := s.loop(ctx); err != nil {
		return err
	}
	if s.summary == nil {
		return nil
	}
	// the session may have ended through cancellation
	return s.printSummary(context.WithoutCancel(ctx), *s.summary)
}

func (s *Shell) printSummary(ctx context.Context, filter task.Filter) error {
	fmt.Fprintf(s.out, "Tasks (%s):\n", filter)
	return s.showTasks(ctx, filter)
}

func (s *Shell) loop(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lines = s.readLines(ctx)

	if s.app.ShowBanner {
		fmt.Fprintf(s.out, "tasklist %s. Tasks are kept in memory until you quit.\n\n", Version)
	}

	for {
		s.printMenu()
		line, err := s.readLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		choice, err := parseChoice(line)
		if err != nil {
			s.logger.Debug("menu choice rejected", "input", line, observability.ErrorKey, err)
			fmt.Fprintln(s.out, msgInvalidChoice)
			continue
		}
		if choice == choiceQuit {
			return nil
		}
		if err := s.dispatch(ctx, choice); err != nil {
			return s.finish(err)
		}
	}
}

// finish maps end-of-input and cancellation to a clean exit.
func (s *Shell) finish(err error) error {
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, context.Canceled):
		s.logger.Debug("shell interrupted")
		return nil
	default:
		return err
	}
}

func (s *Shell) printMenu() {
	for _, line := range menu {
		fmt.Fprintln(s.out, line)
	}
}

// readLines reads in in a goroutine so a blocked read does not hold up
// cancellation. Lines have no length limit; a final line without a newline
// is still delivered.
func (s *Shell) readLines(ctx context.Context) <-chan lineResult {
	ch := make(chan lineResult)
	reader := bufio.NewReader(s.in)
	go func() {
		defer close(ch)
		for {
			line, err := reader.ReadString('\n')
			if err == nil || line != "" {
				select {
				case ch <- lineResult{text: trimLineEnding(line)}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					select {
					case ch <- lineResult{err: err}:
					case <-ctx.Done():
					}
				}
				return
			}
		}
	}()
	return ch
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

func (s *Shell) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	}
}

func (s *Shell) prompt(ctx context.Context, text string) (string, error) {
	fmt.Fprint(s.out, text)
	return s.readLine(ctx)
}

func (s *Shell) dispatch(ctx context.Context, choice menuChoice) error {
	ctx = observability.WithOperation(ctx, choice.operation())
	defer observability.LogDuration(ctx, s.logger, choice.operation(), time.Now())

	switch choice {
	case choiceCreate:
		return s.createTask(ctx)
	case choiceComplete:
		return s.completeTask(ctx)
	case choiceDelete:
		return s.deleteTask(ctx)
	case choiceShowAll:
		return s.showTasks(ctx, task.FilterAll)
	case choiceShowCompleted:
		return s.showTasks(ctx, task.FilterCompleted)
	case choiceShowPending:
		return s.showTasks(ctx, task.FilterPending)
	}
	return nil
}

func (c menuChoice) operation() string {
	switch c {
	case choiceCreate:
		return "task.add"
	case choiceComplete:
		return "task.complete"
	case choiceDelete:
		return "task.delete"
	case choiceShowAll, choiceShowCompleted, choiceShowPending:
		return "task.list"
	default:
		return "shell"
	}
}

func (s *Shell) createTask(ctx context.Context) error {
	description, err := s.prompt(ctx, promptDescription)
	if err != nil {
		return err
	}
	dueDate, err := s.prompt(ctx, promptDueDate)
	if err != nil {
		return err
	}
	tags, err := s.prompt(ctx, promptTags)
	if err != nil {
		return err
	}

	if dueDate != "" && !task.IsValidDueDate(dueDate) {
		s.logger.DebugContext(ctx, "ignoring malformed due date", "due_date", dueDate)
		dueDate = ""
	}

	_, err = s.app.AddTaskHandler.Handle(ctx, commands.AddTaskCommand{
		Description: description,
		DueDate:     dueDate,
		Tags:        tags,
	})
	if errors.Is(err, commands.ErrEmptyDescription) {
		fmt.Fprintln(s.out, msgEmptyDescription)
		return nil
	}
	return err
}

func (s *Shell) completeTask(ctx context.Context) error {
	description, err := s.prompt(ctx, promptComplete)
	if err != nil {
		return err
	}
	err = s.app.CompleteTaskHandler.Handle(ctx, commands.CompleteTaskCommand{Description: description})
	return s.reportNotFound(err)
}

func (s *Shell) deleteTask(ctx context.Context) error {
	description, err := s.prompt(ctx, promptDelete)
	if err != nil {
		return err
	}
	_, err = s.app.DeleteTaskHandler.Handle(ctx, commands.DeleteTaskCommand{Description: description})
	return s.reportNotFound(err)
}

func (s *Shell) reportNotFound(err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		fmt.Fprintln(s.out, msgNotFound)
		return nil
	}
	return err
}

func (s *Shell) showTasks(ctx context.Context, filter task.Filter) error {
	tasks, err := s.app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{Filter: filter})
	if err != nil {
		return err
	}
	renderTasks(s.out, tasks)
	return nil
}
