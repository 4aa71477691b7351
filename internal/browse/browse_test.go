package browse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatchesRawID(t *testing.T) {
	m := NewModel()
	m.filterInput.SetValue("pithag")
	matches := m.filtered()
	require.Len(t, matches, 1)
	assert.Equal(t, "pithag", matches[0])
}

func TestFilterMatchesNormalizedForm(t *testing.T) {
	m := NewModel()
	m.filterInput.SetValue("pit-hag")
	matches := m.filtered()
	require.Len(t, matches, 1)
	assert.Equal(t, "pithag", matches[0])
}

func TestEmptyFilterShowsAllRoles(t *testing.T) {
	m := NewModel()
	assert.Equal(t, m.roleIDs, m.filtered())
}

func TestRenderRowsShowsNormalization(t *testing.T) {
	m := NewModel()
	m.filterInput.SetValue("fanggu")
	rows := m.renderRows()
	assert.Contains(t, rows, "fanggu")
	assert.Contains(t, rows, "fang_gu")
}

func TestViewAfterResize(t *testing.T) {
	m := NewModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := updated.View()
	assert.Contains(t, view, "Role browser")
}

func TestEscQuits(t *testing.T) {
	m := NewModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
