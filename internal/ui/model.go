package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/astrolog/internal/logbook"
)

// KeyMap lists the picker key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Raise  key.Binding
	Lower  key.Binding
	All    key.Binding
	Clear  key.Binding
	Save   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "select")),
		Raise:  key.NewBinding(key.WithKeys("K", "-"), key.WithHelp("K", "earlier")),
		Lower:  key.NewBinding(key.WithKeys("J", "+"), key.WithHelp("J", "later")),
		All:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		Clear:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Save:   key.NewBinding(key.WithKeys("enter", "w"), key.WithHelp("enter/w", "save")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model owns Bubble Tea state for the observation picker.
type Model struct {
	keys    KeyMap
	records []logbook.Record
	output  string

	cursor    int
	selection []string

	saved      bool
	savedCount int
	statusLine string
	errorLine  string
}

type savedMsg struct {
	count int
	err   error
}

// NewModel seeds the picker with the records of store. initial is the
// selection to start from, typically the current contents of output.
func NewModel(store *logbook.Store, output string, initial []string) Model {
	selection := make([]string, len(initial))
	copy(selection, initial)
	return Model{
		keys:       DefaultKeyMap(),
		records:    store.Records(),
		output:     output,
		selection:  selection,
		statusLine: fmt.Sprintf("%d observation%s in log", store.Len(), plural(store.Len())),
	}
}

// Selection returns the ids chosen so far, in report order.
func (m Model) Selection() []string {
	out := make([]string, len(m.selection))
	copy(out, m.selection)
	return out
}

// Saved reports whether the selection was written and how many ids it held.
func (m Model) Saved() (bool, int) {
	return m.saved, m.savedCount
}

// Init has nothing to load; the store is already in memory.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update wires picker state transitions from user input and save results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case savedMsg:
		return m.handleSaved(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.records)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		return m.toggleCurrent(), nil
	case key.Matches(msg, m.keys.Raise):
		return m.moveCurrent(-1), nil
	case key.Matches(msg, m.keys.Lower):
		return m.moveCurrent(1), nil
	case key.Matches(msg, m.keys.All):
		selection := make([]string, 0, len(m.records))
		for _, r := range m.records {
			selection = append(selection, r.ID)
		}
		m.selection = selection
		m.statusLine = fmt.Sprintf("Selected all %d", len(m.selection))
		m.errorLine = ""
	case key.Matches(msg, m.keys.Clear):
		m.selection = nil
		m.statusLine = "Selection cleared."
		m.errorLine = ""
	case key.Matches(msg, m.keys.Save):
		m.statusLine = "Saving..."
		return m, m.saveCmd()
	}
	return m, nil
}

func (m Model) currentID() (string, bool) {
	if len(m.records) == 0 {
		return "", false
	}
	return m.records[m.cursor].ID, true
}

func (m Model) position(id string) int {
	for i, selected := range m.selection {
		if selected == id {
			return i
		}
	}
	return -1
}

func (m Model) toggleCurrent() Model {
	id, ok := m.currentID()
	if !ok {
		return m
	}
	m.errorLine = ""
	if pos := m.position(id); pos >= 0 {
		m.selection = append(m.selection[:pos:pos], m.selection[pos+1:]...)
		m.statusLine = fmt.Sprintf("Removed %s", id)
		return m
	}
	m.selection = append(m.selection, id)
	m.statusLine = fmt.Sprintf("Added %s as #%d", id, len(m.selection))
	return m
}

func (m Model) moveCurrent(delta int) Model {
	id, ok := m.currentID()
	if !ok {
		return m
	}
	pos := m.position(id)
	if pos < 0 {
		m.errorLine = fmt.Sprintf("%s is not selected", id)
		return m
	}
	target := pos + delta
	if target < 0 || target >= len(m.selection) {
		return m
	}
	selection := make([]string, len(m.selection))
	copy(selection, m.selection)
	selection[pos], selection[target] = selection[target], selection[pos]
	m.selection = selection
	m.statusLine = fmt.Sprintf("Moved %s to #%d", id, target+1)
	m.errorLine = ""
	return m
}

func (m Model) saveCmd() tea.Cmd {
	ids := m.Selection()
	output := m.output
	return func() tea.Msg {
		header := fmt.Sprintf("%d observation%s picked with astrolog pick", len(ids), plural(len(ids)))
		if err := logbook.WriteSelection(output, ids, header); err != nil {
			return savedMsg{err: err}
		}
		return savedMsg{count: len(ids)}
	}
}

func (m Model) handleSaved(msg savedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = msg.err.Error()
		m.statusLine = ""
		return m, nil
	}
	m.saved = true
	m.savedCount = msg.count
	m.statusLine = fmt.Sprintf("Wrote %d id%s to %s", msg.count, plural(msg.count), m.output)
	m.errorLine = ""
	return m, nil
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Pick observations (%d selected)", len(m.selection))))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString("(log is empty)\n")
	}
	for i, r := range m.records {
		cursor := " "
		if i == m.cursor {
			cursor = cursorStyle.Render(">")
		}
		mark := "[ ]   "
		if pos := m.position(r.ID); pos >= 0 {
			mark = selectedStyle.Render(fmt.Sprintf("[x] %-2d", pos+1))
		}
		line := fmt.Sprintf("%s %s %s  %s", cursor, mark, r.ID, r.Objects)
		if strings.TrimSpace(r.Date) != "" {
			line += dimStyle.Render("  " + r.Date)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(helpLine(m.keys)))
	b.WriteByte('\n')

	return b.String()
}

func helpLine(keys KeyMap) string {
	bindings := []key.Binding{
		keys.Up, keys.Down, keys.Toggle, keys.Raise, keys.Lower,
		keys.All, keys.Clear, keys.Save, keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return strings.Join(parts, "  ")
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
