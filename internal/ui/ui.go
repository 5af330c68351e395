// Package ui is the terminal front end: a card list with a filter bar, an
// add/edit form and a delete confirmation prompt. All changes to tasks go
// through form.Controller.
package ui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/config"
	"tasklist/internal/form"
	"tasklist/internal/task"
)

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirm
)

type Model struct {
	store  task.Repository
	ctrl   *form.Controller
	prompt *prompt
	notice *noticeBoard
	log    *slog.Logger
	now    func() time.Time

	keys   KeyMap
	help   help.Model
	theme  string
	styles Styles

	tasks    []task.Task
	total    int
	criteria task.Criteria
	cursor   int
	mode     mode
	input    textinput.Model
	field    int
}

func New(store task.Repository, cfg config.Config, log *slog.Logger) (Model, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	status, err := task.ParseStatusFilter(cfg.DefaultStatusFilter)
	if err != nil {
		return Model{}, fmt.Errorf("default status filter: %w", err)
	}
	priority, err := task.ParsePriorityFilter(cfg.DefaultPriorityFilter)
	if err != nil {
		return Model{}, fmt.Errorf("default priority filter: %w", err)
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	p := &prompt{}
	n := &noticeBoard{}
	m := Model{
		store:    store,
		ctrl:     form.New(store, p, n, log),
		prompt:   p,
		notice:   n,
		log:      log,
		now:      time.Now,
		keys:     newKeyMap(cfg.Keys),
		help:     help.New(),
		theme:    cfg.Theme,
		styles:   newStyles(cfg.Theme),
		criteria: task.Criteria{Status: status, Priority: priority},
		input:    ti,
		mode:     modeList,
	}
	n.Notify(fmt.Sprintf("Press '%s' to add a task.", cfg.Keys.Add), form.KindInfo)
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func Run(store task.Repository, cfg config.Config, log *slog.Logger) error {
	m, err := New(store, cfg, log)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeConfirm:
			return m.updateConfirmMode(msg)
		case modeForm:
			return m.updateFormMode(msg)
		default:
			return m.updateListMode(msg)
		}
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-20, 10)
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateListMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.tasks))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.tasks))
	case key.Matches(msg, m.keys.Add):
		m.ctrl.Begin()
		return m.openForm("Add task: fill in the fields and press enter")
	case key.Matches(msg, m.keys.Edit):
		t, ok := m.selected()
		if !ok {
			m.notice.Notify("No task to edit", form.KindInfo)
			return m, nil
		}
		m.ctrl.Edit(t)
		return m.openForm(fmt.Sprintf("Editing %q", t.Name))
	case key.Matches(msg, m.keys.Delete):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.ctrl.Delete(t)
		if m.prompt.pending() {
			m.mode = modeConfirm
		}
	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.selected()
		if !ok {
			return m, nil
		}
		_ = m.ctrl.ToggleDone(t)
		m.reloadKeepingFocus(t.ID)
	case key.Matches(msg, m.keys.FilterStatus):
		m.criteria.Status = task.NextStatusFilter(m.criteria.Status)
		m.reloadOrNotify()
	case key.Matches(msg, m.keys.FilterPriority):
		m.criteria.Priority = task.NextPriorityFilter(m.criteria.Priority)
		m.reloadOrNotify()
	case key.Matches(msg, m.keys.ClearFilter):
		m.criteria = task.Criteria{}
		m.reloadOrNotify()
	case key.Matches(msg, m.keys.Theme):
		if m.theme == config.ThemeDark {
			m.theme = config.ThemeLight
		} else {
			m.theme = config.ThemeDark
		}
		m.styles = newStyles(m.theme)
	}
	return m, nil
}

func (m Model) openForm(status string) (tea.Model, tea.Cmd) {
	m.mode = modeForm
	m.field = 0
	m.loadField()
	m.notice.Notify(status, form.KindInfo)
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) updateFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.ctrl.Cancel()
		m.closeForm()
		m.notice.Notify("Cancelled", form.KindInfo)
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		if m.commitField() {
			m.field = wrapIndex(m.field+1, len(form.Fields()))
			m.loadField()
		}
		return m, nil
	case key.Matches(msg, m.keys.PrevField):
		if m.commitField() {
			m.field = wrapIndex(m.field-1, len(form.Fields()))
			m.loadField()
		}
		return m, nil
	case key.Matches(msg, m.keys.Cycle) && m.cyclable():
		m.cycleField(msg.String() == "up")
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if !m.commitField() {
			return m, nil
		}
		editing := m.ctrl.Editing()
		if err := m.ctrl.Submit(); err != nil {
			if editing && !m.ctrl.Editing() {
				// the task vanished while it was being edited
				m.closeForm()
				m.reloadOrNotify()
				return m, nil
			}
			m.field = 0
			m.loadField()
			return m, nil
		}
		m.closeForm()
		if editing {
			m.reloadKeepingFocus(m.selectedID())
		} else {
			m.reloadOrNotify()
			m.focusLast()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.prompt.answer(true)
	case key.Matches(msg, m.keys.No):
		m.prompt.answer(false)
	default:
		return m, nil
	}
	if !m.prompt.pending() {
		m.mode = modeList
	}
	m.reloadOrNotify()
	return m, nil
}

func (m *Model) closeForm() {
	m.mode = modeList
	m.field = 0
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) currentField() string {
	return form.Fields()[m.field]
}

func (m *Model) loadField() {
	f := m.currentField()
	m.input.SetValue(m.ctrl.FieldValue(f))
	m.input.CursorEnd()
	switch f {
	case form.FieldDeadline:
		m.input.Placeholder = "YYYY-MM-DD (empty for none)"
	case form.FieldName:
		m.input.Placeholder = "Task name"
	default:
		m.input.Placeholder = ""
	}
}

// commitField copies the input into the draft. It reports false when the
// value does not parse; the controller has already told the user why.
func (m *Model) commitField() bool {
	return m.ctrl.SetField(m.currentField(), m.input.Value()) == nil
}

func (m *Model) cyclable() bool {
	f := m.currentField()
	return f == form.FieldPriority || f == form.FieldStatus
}

func (m *Model) cycleField(back bool) {
	d := m.ctrl.Draft()
	step := 1
	if back {
		step = -1
	}
	switch m.currentField() {
	case form.FieldPriority:
		all := task.Priorities()
		m.ctrl.SetPriority(all[wrapIndex(indexOf(all, d.Priority)+step, len(all))])
	case form.FieldStatus:
		all := task.Statuses()
		m.ctrl.SetStatus(all[wrapIndex(indexOf(all, d.Status)+step, len(all))])
	}
	m.loadField()
}

func (m *Model) selected() (task.Task, bool) {
	if len(m.tasks) == 0 {
		return task.Task{}, false
	}
	return m.tasks[clampCursor(m.cursor, len(m.tasks))], true
}

func (m *Model) selectedID() task.ID {
	t, _ := m.selected()
	return t.ID
}

// reload refreshes the visible tasks from the store.
func (m *Model) reload() error {
	all, err := m.store.List()
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	m.total = len(all)
	m.tasks = task.Visible(all, m.criteria)
	m.cursor = clampCursor(m.cursor, len(m.tasks))
	return nil
}

func (m *Model) reloadOrNotify() {
	if err := m.reload(); err != nil {
		m.log.Error("reload failed", "error", err)
		m.notice.Notify(fmt.Sprintf("reload failed: %v", err), form.KindError)
	}
}

func (m *Model) reloadKeepingFocus(id task.ID) {
	m.reloadOrNotify()
	for i, t := range m.tasks {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *Model) focusLast() {
	m.cursor = clampCursor(len(m.tasks)-1, len(m.tasks))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("✔ Task List"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Set your priorities"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFilterBar())
	b.WriteString("\n\n")

	switch {
	case m.total == 0:
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("No tasks yet. Press '%s' to add one.", m.keys.Add.Help().Key)))
		b.WriteString("\n")
	case len(m.tasks) == 0:
		b.WriteString(m.styles.Muted.Render("No tasks match the current filters."))
		b.WriteString("\n")
	default:
		b.WriteString(m.renderTaskList())
	}

	switch m.mode {
	case modeForm:
		b.WriteString("\n")
		b.WriteString(m.renderForm())
		b.WriteString("\n")
	case modeConfirm:
		b.WriteString("\n")
		b.WriteString(m.styles.Prompt.Render(m.prompt.message + "\n\n" + m.help.ShortHelpView(m.keys.confirmHelp())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.notice.message != "" {
		b.WriteString(m.styles.Notice(m.notice.kind).Render(m.notice.message))
		b.WriteString("\n")
	}
	if m.mode == modeList {
		b.WriteString(m.help.View(m.keys))
	} else if m.mode == modeForm {
		b.WriteString(m.help.ShortHelpView(m.keys.formHelp()))
	}
	return b.String()
}

func (m Model) renderFilterBar() string {
	return m.styles.FilterBar.Render(fmt.Sprintf("Status: %s   Priority: %s   (%d of %d)",
		task.StatusLabel(m.criteria.Status),
		task.PriorityLabel(m.criteria.Priority),
		len(m.tasks), m.total))
}

func (m Model) renderTaskList() string {
	today := task.DateOf(m.now())
	var b strings.Builder
	for i, t := range m.tasks {
		b.WriteString(m.renderCard(t, today, i == m.cursor && m.mode == modeList))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCard(t task.Task, today task.Date, focused bool) string {
	prox := task.Classify(t.Deadline, today)
	st := m.styles

	head := st.TaskName.Render(t.Name) + "  " + st.Priority(t.Priority).Render(t.Priority.String())
	status := st.Status(t.Status).Render(statusIcon(t.Status) + " " + t.Status.String())
	body := head + "\n" + status + "\n" + st.Deadline.Render("Deadline: "+deadlineText(t.Deadline, today, prox))
	return st.CardFor(prox, focused).Render(body)
}

func deadlineText(d task.Date, today task.Date, p task.Proximity) string {
	if p == task.NoDeadline {
		return "No Deadline"
	}
	days := task.DaysUntil(d, today)
	switch {
	case days < -1:
		return fmt.Sprintf("%s (overdue by %d days)", d, -days)
	case days == -1:
		return fmt.Sprintf("%s (overdue by 1 day)", d)
	case days == 0:
		return fmt.Sprintf("%s (today)", d)
	case days == 1:
		return fmt.Sprintf("%s (tomorrow)", d)
	default:
		return fmt.Sprintf("%s (in %d days)", d, days)
	}
}

func (m Model) renderForm() string {
	title := "Add Task"
	if m.ctrl.Editing() {
		title = "Edit Task"
	}
	var b strings.Builder
	b.WriteString(m.styles.TaskName.Render(title))
	b.WriteString("\n\n")
	for i, f := range form.Fields() {
		label := fmt.Sprintf("%-9s", fieldLabel(f))
		if i == m.field {
			b.WriteString(m.styles.FieldActive.Render("> "+label) + " " + m.input.View())
		} else {
			val := m.ctrl.FieldValue(f)
			if val == "" {
				val = "(empty)"
			}
			b.WriteString("  " + label + " " + m.styles.Muted.Render(val))
		}
		b.WriteString("\n")
	}
	return m.styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func fieldLabel(f string) string {
	switch f {
	case form.FieldName:
		return "Task"
	case form.FieldPriority:
		return "Priority"
	case form.FieldStatus:
		return "Status"
	case form.FieldDeadline:
		return "Deadline"
	}
	return f
}

func indexOf[T comparable](all []T, v T) int {
	for i, x := range all {
		if x == v {
			return i
		}
	}
	return 0
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
