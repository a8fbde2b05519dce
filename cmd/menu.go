package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/senna-lang/schedtrack/internal/task"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive schedule menu",
	Long: `Start the interactive menu (the default when sched is run without a
subcommand):

  1. Add Task             date, description, priority and recurrence
  2. Display All Tasks    every task, ranked by priority
  3. Display Future Tasks tasks dated after the reference date
  4. Exit

The date is entered on one line as "day month year". Use --no-prompt to
feed a script on stdin without the menu text in the output.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd)
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command) error {
	st, err := loadSettings(globalOpts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	m := newMenu(cmd.InOrStdin(), cmd.OutOrStdout(), task.NewStore(), st.today, st.quiet, st.logger)
	return m.run()
}

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceListAll
	choiceListFuture
	choiceExit
)

const menuText = `
Schedule Tracker Menu:
1. Add Task
2. Display All Tasks
3. Display Future Tasks
4. Exit
`

// menu drives one interactive session against a single store.
type menu struct {
	in     *bufio.Reader
	inErr  error // first read error other than io.EOF
	out    io.Writer
	store  *task.Store
	today  task.Date
	quiet  bool
	logger *log.Logger
}

func newMenu(in io.Reader, out io.Writer, store *task.Store, today task.Date, quiet bool, logger *log.Logger) *menu {
	return &menu{
		in:     bufio.NewReader(in),
		out:    out,
		store:  store,
		today:  today,
		quiet:  quiet,
		logger: logger,
	}
}

// run reads choices until Exit is selected or input ends.
func (m *menu) run() error {
	for {
		if !m.quiet {
			fmt.Fprint(m.out, menuText)
		}
		line, ok := m.prompt("Choose an option: ")
		if !ok {
			return m.inErr
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.logger.Debug("non-numeric menu choice", "input", line)
			fmt.Fprintln(m.out, "invalid input. please enter a number.")
			continue
		}

		switch choice {
		case choiceAdd:
			if !m.addTask() {
				return m.inErr
			}
		case choiceListAll:
			m.logger.Debug("listing all tasks", "count", m.store.TaskCount())
			if err := task.WriteByPriority(m.out, m.store); err != nil {
				return fmt.Errorf("list tasks: %w", err)
			}
		case choiceListFuture:
			m.logger.Debug("listing future tasks", "after", m.today.String())
			if err := task.WriteFuture(m.out, m.store, m.today); err != nil {
				return fmt.Errorf("list future tasks: %w", err)
			}
		case choiceExit:
			return nil
		default:
			fmt.Fprintln(m.out, "invalid option. please try again.")
		}
	}
}

// addTask collects one task from input and adds it to the store.
// It returns false if input ended before the task was complete.
func (m *menu) addTask() bool {
	line, ok := m.prompt("Enter date (day month year): ")
	if !ok {
		return false
	}
	d, err := parseDateFields(line)
	if err != nil {
		m.logger.Debug("unreadable date", "input", line, "err", err)
		fmt.Fprintln(m.out, "invalid date input.")
		return true
	}

	description, ok := m.prompt("Enter task description: ")
	if !ok {
		return false
	}
	priority, ok := m.prompt("Enter priority (high, medium, low): ")
	if !ok {
		return false
	}
	recurrence, ok := m.prompt("Enter recurrence (none, daily, weekly, monthly): ")
	if !ok {
		return false
	}

	err = m.store.Add(d, description, task.Priority(priority), recurrence)
	if err != nil {
		m.logger.Info("task rejected", "date", d.Short(), "description", description, "err", err)
	} else {
		m.logger.Debug("task added", "date", d.Short(), "description", description,
			"dates", m.store.Len(), "tasks", m.store.TaskCount())
	}
	fmt.Fprintln(m.out, task.AddMessage(d, err))
	return true
}

// prompt prints text (unless quiet) and reads the next input line.
func (m *menu) prompt(text string) (string, bool) {
	if !m.quiet {
		fmt.Fprint(m.out, text)
	}
	return m.readLine()
}

// readLine returns the next input line without its line ending. Lines may
// be of any length. A final line with no trailing newline is still returned.
func (m *menu) readLine() (string, bool) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			m.inErr = err
			return "", false
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

// parseDateFields reads "day month year" as three integers. Calendar
// validity is left to the store.
func parseDateFields(line string) (task.Date, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return task.Date{}, fmt.Errorf("expected 3 numbers, got %d fields", len(fields))
	}
	var nums [3]int
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return task.Date{}, err
		}
		nums[i] = n
	}
	return task.NewDate(nums[0], nums[1], nums[2]), nil
}
