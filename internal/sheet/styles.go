package sheet

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/clocktower-tools/scriptgen/botc"
)

// Team banner colors follow the printed sheet palette
var teamColors = map[botc.Team]lipgloss.Color{
	botc.TeamTownsfolk: lipgloss.Color("#1F65FF"),
	botc.TeamOutsider:  lipgloss.Color("#46B4D6"),
	botc.TeamMinion:    lipgloss.Color("#D66E29"),
	botc.TeamDemon:     lipgloss.Color("#CE0100"),
}

// Styles holds the lipgloss styles for one render pass
type Styles struct {
	Title    lipgloss.Style
	Author   lipgloss.Style
	Banner   lipgloss.Style
	RoleName lipgloss.Style
	Ability  lipgloss.Style
	Reminder lipgloss.Style
}

// NewStyles builds the style set from the configured colors
func NewStyles(titleColor, accentColor string) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color(titleColor)).
			Padding(0, 1).
			Bold(true),
		Author: lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor)).
			Italic(true),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Padding(0, 1).
			Bold(true),
		RoleName: lipgloss.NewStyle().
			Bold(true),
		Ability: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Reminder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
	}
}

func (s Styles) bannerFor(team botc.Team) lipgloss.Style {
	color, ok := teamColors[team]
	if !ok {
		color = lipgloss.Color("#626262")
	}
	return s.Banner.Background(color)
}
