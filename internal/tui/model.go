// Package tui renders the customers screen. A Bubble Tea model drives the
// screen on a terminal; a line-oriented Console serves pipes and scripts.
// Both only call customer.Controller operations and render its snapshot.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smileynet/shopdesk/internal/customer"
)

// Focus identifies the widget receiving keyboard input.
type Focus int

const (
	FocusSearch Focus = iota // Search box.
	FocusName                // Form name input.
	FocusPhone               // Form phone input.
	FocusEmail               // Form email input.
	FocusList                // Customer list.
)

const focusCount = int(FocusList) + 1

// field returns the draft field edited by a form input focus.
func (f Focus) field() (customer.Field, bool) {
	switch f {
	case FocusName:
		return customer.FieldName, true
	case FocusPhone:
		return customer.FieldPhone, true
	case FocusEmail:
		return customer.FieldEmail, true
	default:
		return 0, false
	}
}

// settings holds presentation options shared by the screen and the console.
type settings struct {
	debounce   time.Duration
	region     string
	timeFormat string
}

func defaultSettings() settings {
	return settings{
		debounce:   customer.DefaultDebounce,
		region:     "US",
		timeFormat: "2006-01-02 15:04",
	}
}

// Option configures a Model or a Console.
type Option func(*settings)

// WithDebounce sets the search quiet period. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		if d > 0 {
			s.debounce = d
		}
	}
}

// WithPhoneRegion sets the region used to format phone numbers for display.
// An empty region shows phone numbers as stored.
func WithPhoneRegion(region string) Option {
	return func(s *settings) { s.region = region }
}

// WithTimeFormat sets the layout of the "Added" timestamp.
func WithTimeFormat(layout string) Option {
	return func(s *settings) {
		if layout != "" {
			s.timeFormat = layout
		}
	}
}

func applyOptions(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Model is the Bubble Tea model for the customers screen.
type Model struct {
	settings

	ctrl   *customer.Controller
	inputs [FocusList]textinput.Model // Indexed by Focus; the list has no input.
	focus  Focus
	cursor int
	status string // Result of the last action.
	width  int
	height int
	help   help.Model
}

// NewModel creates a customers screen over ctrl with the name input focused.
func NewModel(ctrl *customer.Controller, opts ...Option) Model {
	m := Model{
		settings: applyOptions(opts),
		ctrl:     ctrl,
		focus:    FocusName,
		help:     help.New(),
	}

	placeholders := [FocusList]string{
		FocusSearch: "Search by name, phone or email",
		FocusName:   "Jane Doe",
		FocusPhone:  "(555) 123-4567",
		FocusEmail:  "jane@example.com",
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 120
		m.inputs[i] = ti
	}
	m.inputs[FocusName].Focus()
	m.syncDraft()
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case searchCommitMsg:
		if m.ctrl.CommitSearch(msg.token) {
			m.clampCursor()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other widget messages go to the focused input.
	return m.updateInput(msg)
}

// handleKey routes key messages: global keys first, then the open
// confirmation, then the focused widget.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if id := m.ctrl.Snapshot().PendingDelete; id != "" {
		return m.handleConfirmKey(msg, id)
	}

	switch msg.String() {
	case "tab":
		return m.setFocus(Focus((int(m.focus) + 1) % focusCount))
	case "shift+tab":
		return m.setFocus(Focus((int(m.focus) + focusCount - 1) % focusCount))
	}

	switch m.focus {
	case FocusList:
		return m.handleListKey(msg)
	case FocusSearch:
		return m.handleSearchKey(msg)
	default:
		return m.handleFormKey(msg)
	}
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		m.ctrl.FlushSearch()
		m.clampCursor()
		return m, nil
	}

	before := m.inputs[FocusSearch].Value()
	m, cmd := m.updateInput(msg)
	if v := m.inputs[FocusSearch].Value(); v != before {
		tok := m.ctrl.SetSearchQuery(v)
		cmd = tea.Batch(cmd, scheduleCommit(m.debounce, tok))
	}
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.submit()
	case "esc":
		if m.ctrl.Snapshot().Mode == customer.ModeEdit {
			m.ctrl.CancelEdit()
			m.syncDraft()
			m.status = "Edit cancelled"
		}
		return m, nil
	}

	field, _ := m.focus.field()
	before := m.inputs[m.focus].Value()
	m, cmd := m.updateInput(msg)
	if v := m.inputs[m.focus].Value(); v != before {
		m.ctrl.SetField(field, v)
	}
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	records := m.ctrl.Snapshot().Records

	switch msg.String() {
	case "up", "k":
		if len(records) > 0 {
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(records) - 1
			}
		}
		return m, nil

	case "down", "j":
		if len(records) > 0 {
			m.cursor++
			if m.cursor >= len(records) {
				m.cursor = 0
			}
		}
		return m, nil

	case "enter", "e":
		r, ok := m.selected(records)
		if !ok {
			return m, nil
		}
		if err := m.ctrl.StartEdit(r.ID); err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.syncDraft()
		m.status = "Editing " + r.Name
		return m.setFocus(FocusName)

	case "d", "x":
		r, ok := m.selected(records)
		if !ok {
			return m, nil
		}
		if err := m.ctrl.RequestDelete(r.ID); err != nil {
			m.status = "Error: " + err.Error()
		}
		return m, nil

	case "q":
		return m, tea.Quit
	}

	return m, nil
}

// handleConfirmKey processes keys while the delete confirmation for id is
// open. Keys other than confirm and decline are ignored.
func (m Model) handleConfirmKey(msg tea.KeyMsg, id string) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "y":
		r, _ := m.ctrl.Record(id)
		if err := m.ctrl.ConfirmDelete(id); err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.status = "Deleted " + r.Name
		// The deleted record may have been the edit target.
		m.syncDraft()
		m.clampCursor()
	case "esc", "n":
		m.ctrl.DeclineDelete()
	}
	return m, nil
}

// submit commits the draft and reports the outcome in the status line.
// Field errors are rendered from the controller snapshot.
func (m Model) submit() (tea.Model, tea.Cmd) {
	before := m.ctrl.Snapshot()
	name := strings.TrimSpace(before.Draft.Name)
	_, targetExists := m.ctrl.Record(before.EditingID)

	err := m.ctrl.Submit()
	switch {
	case err == nil:
		switch {
		case before.Mode == customer.ModeCreate:
			m.status = "Saved " + name
		case targetExists:
			m.status = "Updated " + name
		default:
			m.status = "Customer no longer exists"
		}
		m.syncDraft()
		m.clampCursor()
		return m.setFocus(FocusName)

	case customer.IsKind(err, customer.KindValidation), customer.IsKind(err, customer.KindDuplicate):
		m.status = ""
		return m.setFocus(firstInvalid(m.ctrl.Snapshot().Errors, m.focus))

	default:
		m.status = "Error: " + err.Error()
		return m, nil
	}
}

// firstInvalid returns the focus of the first form field with an error,
// or fallback if none has one.
func firstInvalid(errs customer.FieldErrors, fallback Focus) Focus {
	for _, f := range []Focus{FocusName, FocusPhone, FocusEmail} {
		field, _ := f.field()
		if errs.Get(field) != "" {
			return f
		}
	}
	return fallback
}

// setFocus moves keyboard focus to f, blurring every other input.
func (m Model) setFocus(f Focus) (Model, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = f
	if f == FocusList {
		m.clampCursor()
		return m, nil
	}
	return m, m.inputs[f].Focus()
}

// updateInput forwards msg to the focused input, if any.
func (m Model) updateInput(msg tea.Msg) (Model, tea.Cmd) {
	if m.focus == FocusList {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// syncDraft copies the controller draft into the form inputs after the
// controller replaced it (edit start, reset, delete of the edit target).
func (m *Model) syncDraft() {
	d := m.ctrl.Snapshot().Draft
	m.inputs[FocusName].SetValue(d.Name)
	m.inputs[FocusPhone].SetValue(d.Phone)
	m.inputs[FocusEmail].SetValue(d.Email)
	for i := range m.inputs {
		m.inputs[i].CursorEnd()
	}
}

func (m *Model) clampCursor() {
	m.cursor = clampCursor(m.cursor, len(m.ctrl.Snapshot().Records))
}

func (m Model) selected(records []customer.Record) (customer.Record, bool) {
	if len(records) == 0 || m.cursor < 0 || m.cursor >= len(records) {
		return customer.Record{}, false
	}
	return records[m.cursor], true
}

// View renders the header, search box, form, list, status line, and help bar.
// While a deletion awaits confirmation only the confirmation box is shown.
func (m Model) View() string {
	snap := m.ctrl.Snapshot()

	sections := []string{
		titleStyle.Render("Customers") + "\n" + subtitleStyle.Render("Manage your shop's customers"),
	}

	if snap.PendingDelete != "" {
		if r, ok := m.ctrl.Record(snap.PendingDelete); ok {
			sections = append(sections, confirmState{record: r}.View(m.width))
		}
	} else {
		sections = append(sections,
			labelStyle.Render("Search")+m.inputs[FocusSearch].View(),
			m.formView(snap),
			m.listHeader(snap)+"\n"+listView(snap.Records, m.cursor, m.focus == FocusList, snap.Query, m.region, m.timeFormat),
		)
	}

	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(HelpBindings(m.focus, snap.Mode == customer.ModeEdit, snap.PendingDelete != "")))

	return strings.Join(sections, "\n\n")
}

func (m Model) formView(snap customer.State) string {
	title, hint := "Add Customer", "[Enter] Save Customer"
	if snap.Mode == customer.ModeEdit {
		title, hint = "Edit Customer", "[Enter] Update   [Esc] Cancel"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, f := range []Focus{FocusName, FocusPhone, FocusEmail} {
		field, _ := f.field()
		fmt.Fprintf(&b, "\n%s%s", labelStyle.Render(fieldLabel(field)), m.inputs[f].View())
		if msg := snap.Errors.Get(field); msg != "" {
			fmt.Fprintf(&b, "\n%s%s", labelStyle.Render(""), errorText.Render(msg))
		}
	}
	b.WriteString("\n\n" + mutedText.Render(hint))

	style := UnfocusedBorder()
	if _, ok := m.focus.field(); ok {
		style = FocusedBorder()
	}
	if w := boxWidth(m.width); w > 0 {
		style = style.Width(w)
	}
	return style.Render(b.String())
}

func (m Model) listHeader(snap customer.State) string {
	if snap.Query != "" {
		return titleStyle.Render(fmt.Sprintf("Customer list (%d of %d)", len(snap.Records), snap.Total))
	}
	return titleStyle.Render(fmt.Sprintf("Customer list (%d)", snap.Total))
}

func fieldLabel(f customer.Field) string {
	switch f {
	case customer.FieldName:
		return "Name"
	case customer.FieldPhone:
		return "Phone"
	default:
		return "Email"
	}
}
