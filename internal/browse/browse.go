// Package browse is an interactive role table browser: every known
// role id with its normalized form, filterable as you type.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/clocktower-tools/scriptgen/botc"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	normalizedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))
)

// Model is the Bubble Tea model for the role browser
type Model struct {
	filterInput textinput.Model
	list        viewport.Model

	roleIDs []string

	width       int
	height      int
	initialized bool
}

// NewModel creates a browser over the full role table
func NewModel() *Model {
	ti := textinput.New()
	ti.Placeholder = "Type to filter role ids"
	ti.Focus()
	ti.CharLimit = 40
	ti.Prompt = "/ "

	vp := viewport.New(10, 5)

	return &Model{
		filterInput: ti,
		list:        vp,
		roleIDs:     botc.OrderedRoleIDs(),
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.Width = msg.Width
		m.list.Height = msg.Height - 3 // header + filter line
		m.initialized = true

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.list.SetContent(m.renderRows())
	return m, cmd
}

// View renders the browser
func (m *Model) View() string {
	if !m.initialized {
		return "loading..."
	}

	matches := m.filtered()
	header := headerStyle.Render("Role browser") + " " +
		countStyle.Render(fmt.Sprintf("%d/%d roles", len(matches), len(m.roleIDs)))

	m.list.SetContent(m.renderRows())
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.list.View(),
		m.filterInput.View(),
	)
}

func (m *Model) filtered() []string {
	filter := strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
	if filter == "" {
		return m.roleIDs
	}
	var matches []string
	for _, id := range m.roleIDs {
		if strings.Contains(id, filter) || strings.Contains(botc.NormalizeRoleID(id), filter) {
			matches = append(matches, id)
		}
	}
	return matches
}

func (m *Model) renderRows() string {
	var b strings.Builder
	for _, id := range m.filtered() {
		b.WriteString(id)
		if normalized := botc.NormalizeRoleID(id); normalized != id {
			b.WriteString("  ")
			b.WriteString(normalizedStyle.Render("→ " + normalized))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Run starts the browser and blocks until the user quits
func Run() error {
	p := tea.NewProgram(NewModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}
	return nil
}
