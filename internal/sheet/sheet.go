// Package sheet renders a parsed script as a terminal script sheet:
// a meta header followed by one section per team in sheet order, each
// role on its own row with name and ability text.
package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/clocktower-tools/scriptgen/botc"
)

const roleNameWidth = 18

// Renderer renders scripts with a fixed width and style set
type Renderer struct {
	width         int
	showReminders bool
	styles        Styles
}

// Option configures a Renderer
type Option func(*Renderer)

// WithReminders includes night reminder text under each ability line
func WithReminders() Option {
	return func(r *Renderer) {
		r.showReminders = true
	}
}

// NewRenderer creates a renderer for the given terminal width. Widths
// below 40 columns cannot fit a name column plus ability text and are
// clamped.
func NewRenderer(width int, styles Styles, opts ...Option) *Renderer {
	if width < 40 {
		width = 40
	}
	r := &Renderer{
		width:  width,
		styles: styles,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the full sheet for a script
func (r *Renderer) Render(script *botc.Script) string {
	var sections []string

	if header := r.renderHeader(script); header != "" {
		sections = append(sections, header)
	}

	grouped := script.RolesByTeam()
	for _, team := range botc.SheetTeams() {
		roles, ok := grouped[team]
		if !ok {
			continue
		}
		sections = append(sections, r.renderTeam(team, roles))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (r *Renderer) renderHeader(script *botc.Script) string {
	if script.Meta == nil {
		return ""
	}

	title := r.styles.Title.Render(strings.ToUpper(script.Meta.Name))
	if script.Meta.Author == "" {
		return title
	}

	author := r.styles.Author.Render("by " + script.Meta.Author)
	gap := r.width - lipgloss.Width(title) - lipgloss.Width(author)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + author
}

func (r *Renderer) renderTeam(team botc.Team, roles []botc.Role) string {
	banner := r.styles.bannerFor(team).Width(r.width).Render(titleCase(team.String()))

	rows := []string{banner}
	for _, role := range roles {
		rows = append(rows, r.renderRole(role))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) renderRole(role botc.Role) string {
	name := role.Name
	if name == "" {
		name = botc.NormalizeRoleID(role.ID)
	}

	nameCol := r.styles.RoleName.Width(roleNameWidth).Render(name)
	abilityCol := r.styles.Ability.Width(r.width - roleNameWidth - 2).Render(role.Ability)
	row := lipgloss.JoinHorizontal(lipgloss.Top, nameCol, "  ", abilityCol)

	if !r.showReminders {
		return row
	}

	var reminders []string
	if role.FirstNightReminder != "" {
		reminders = append(reminders, "first night: "+role.FirstNightReminder)
	}
	if role.OtherNightReminder != "" {
		reminders = append(reminders, "other nights: "+role.OtherNightReminder)
	}
	if len(reminders) == 0 {
		return row
	}

	reminderCol := r.styles.Reminder.
		Width(r.width - roleNameWidth - 2).
		Render(strings.Join(reminders, "\n"))
	indent := strings.Repeat(" ", roleNameWidth+2)
	padded := indent + strings.ReplaceAll(reminderCol, "\n", "\n"+indent)
	return lipgloss.JoinVertical(lipgloss.Left, row, padded)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
