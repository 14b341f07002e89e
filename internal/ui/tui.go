// Package ui provides the interactive terminal interface.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskpad/internal/task"
	"taskpad/internal/theme"
)

type mode int

const (
	modeList mode = iota
	modeAdd
)

// Model binds the task list and theme to the terminal. It holds no
// task state of its own; every frame reads the list's visible
// projection.
type Model struct {
	list   *task.List
	themes *theme.Manager

	cursor     int
	mode       mode
	input      textinput.Model
	priority   task.Priority
	status     string
	confirmDel bool
	pendingDel *task.Task
	showHelp   bool
	width      int
}

// New creates the UI model over the given list and theme manager.
func New(list *task.List, themes *theme.Manager) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 40

	return Model{
		list:     list,
		themes:   themes,
		input:    ti,
		priority: task.PriorityMedium,
		status:   "Press 'a' to add, space to toggle, 'd' to delete, '?' for help.",
	}
}

// Run starts the UI program and blocks until it exits.
func Run(list *task.List, themes *theme.Manager) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("the interactive UI requires a TTY")
	}
	program := tea.NewProgram(New(list, themes), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String()), nil
		}
		if m.mode == modeAdd {
			return m.updateAddMode(msg)
		}
		key := msg.String()
		if key == "ctrl+c" || key == "q" {
			return m, tea.Quit
		}
		return m.updateListMode(key), nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 10 {
			m.input.Width = msg.Width - 10
		}
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "tab":
		m.priority = nextPriority(m.priority)
		return m, nil
	case "enter":
		if !m.list.Add(m.input.Value(), m.priority) {
			m.status = "Task text cannot be empty"
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		m.cursor = 0
		m.status = "Added task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) Model {
	visible := m.list.Visible()

	switch key {
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(visible))
	case "up", "k":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(visible))
		}
	case "a":
		m.mode = modeAdd
		m.priority = task.PriorityMedium
		m.input.Focus()
		m.status = "Add mode: type the task, tab cycles priority, enter saves"
	case " ":
		if len(visible) == 0 {
			return m
		}
		m.list.Toggle(visible[m.cursor].ID)
		m.cursor = clampCursor(m.cursor, len(m.list.Visible()))
		m.status = "Toggled task"
	case "d":
		if len(visible) == 0 {
			return m
		}
		t := visible[m.cursor]
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Text)
	case "c":
		before := m.list.Len()
		m.list.ClearCompleted()
		m.cursor = clampCursor(m.cursor, len(m.list.Visible()))
		m.status = fmt.Sprintf("Cleared %d completed", before-m.list.Len())
	case "1":
		m.list.SetFilter(task.FilterAll)
		m.cursor = 0
		m.status = "Showing all tasks"
	case "2":
		m.list.SetFilter(task.FilterActive)
		m.cursor = 0
		m.status = "Showing active tasks"
	case "3":
		m.list.SetFilter(task.FilterCompleted)
		m.cursor = 0
		m.status = "Showing completed tasks"
	case "0":
		m.list.SetFilter(task.FilterAll)
		m.cursor = 0
		m.status = "Filter cleared"
	case "t":
		m.themes.Flip()
		m.status = fmt.Sprintf("Theme: %s", m.themes.Name())
	case "h", "?":
		m.showHelp = !m.showHelp
	}
	return m
}

func (m Model) updateDeleteConfirm(key string) Model {
	switch key {
	case "y", "Y":
		if m.pendingDel != nil {
			m.list.Delete(m.pendingDel.ID)
			m.status = "Deleted task"
		}
		m.confirmDel = false
		m.pendingDel = nil
		m.cursor = clampCursor(m.cursor, len(m.list.Visible()))
	case "n", "N", "esc":
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
	}
	return m
}

func (m Model) View() string {
	styles := m.themes.Styles()
	var b strings.Builder

	b.WriteString(styles.Title.Render("taskpad"))
	b.WriteString("\n\n")

	if m.showHelp {
		writeHelp(&b, styles)
		return b.String()
	}

	if m.list.Filter() != task.FilterAll {
		b.WriteString(styles.Filter.Render(fmt.Sprintf("Filter: %s (0 to clear)", m.list.Filter())))
		b.WriteString("\n\n")
	}

	visible := m.list.Visible()
	if len(visible) == 0 {
		b.WriteString(styles.Hint.Render(emptyMessage(m.list.Filter())))
		b.WriteString("\n")
	} else {
		for i, t := range visible {
			b.WriteString(m.renderTask(styles, t, i == m.cursor && m.mode == modeList))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")

	if m.mode == modeAdd {
		b.WriteString(fmt.Sprintf("New task (%s): ", styles.Priority[string(m.priority)].Render(string(m.priority))))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	counts := m.list.Counts()
	bar := fmt.Sprintf("%d active / %d completed / %s theme", counts.Active, counts.Completed, m.themes.Name())
	b.WriteString(styles.Status.Render(bar))
	b.WriteString("\n")

	if m.confirmDel {
		b.WriteString(styles.Danger.Render(m.status))
	} else {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(styles.Hint.Render("a add • space toggle • d delete • c clear done • 1/2/3 filter • t theme • ? help • q quit"))

	return b.String()
}

func (m Model) renderTask(styles theme.Styles, t task.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = styles.Cursor.Render("> ")
	}

	checkbox := "[ ]"
	text := styles.Normal.Render(t.Text)
	if t.Completed {
		checkbox = "[x]"
		text = styles.Done.Render(t.Text)
	}

	badge := styles.Priority[string(t.Priority)].Render(fmt.Sprintf("(%s)", t.Priority))
	created := styles.Hint.Render(t.CreatedAt.Local().Format("Jan 02 15:04"))
	return fmt.Sprintf("%s%s %s %s %s", cursor, checkbox, badge, text, created)
}

func writeHelp(b *strings.Builder, styles theme.Styles) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  a            Add a task (tab cycles priority)\n")
	b.WriteString("  space        Toggle selected task\n")
	b.WriteString("  d            Delete selected task (y/n to confirm)\n")
	b.WriteString("  c            Clear completed tasks\n")
	b.WriteString("  1            Show all tasks\n")
	b.WriteString("  2            Show active tasks\n")
	b.WriteString("  3            Show completed tasks\n")
	b.WriteString("  0            Clear filter\n")
	b.WriteString("  t            Toggle light/dark theme\n")
	b.WriteString("  j/k, arrows  Move selection\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  q, ctrl+c    Quit\n\n")
	b.WriteString(styles.Hint.Render("Press ? to go back"))
	b.WriteString("\n")
}

func emptyMessage(f task.Filter) string {
	switch f {
	case task.FilterActive:
		return "No active tasks."
	case task.FilterCompleted:
		return "No completed tasks."
	default:
		return "No tasks yet. Press 'a' to add one."
	}
}

func nextPriority(p task.Priority) task.Priority {
	switch p {
	case task.PriorityLow:
		return task.PriorityMedium
	case task.PriorityMedium:
		return task.PriorityHigh
	default:
		return task.PriorityLow
	}
}

func clampCursor(cursor, length int) int {
	if length == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= length {
		return length - 1
	}
	return cursor
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
