package botc

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
)

// Role is a single role record from a script file.
type Role struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Team               string   `json:"team"`
	Ability            string   `json:"ability"`
	Image              string   `json:"image,omitempty"`
	FirstNightReminder string   `json:"firstNightReminder,omitempty"`
	OtherNightReminder string   `json:"otherNightReminder,omitempty"`
	RemindersGlobal    []string `json:"remindersGlobal,omitempty"`
	Reminders          []string `json:"reminders,omitempty"`

	// Author is only ever set on the _meta record.
	Author string `json:"author,omitempty"`
}

// Meta carries the script-level header information from the _meta record.
type Meta struct {
	Name   string
	Author string
}

// Script is a parsed script file: the optional meta header plus every
// role record that belongs to a printable team, in canonical team order.
type Script struct {
	Meta  *Meta
	Roles []Role
}

// ParseScript decodes a script from JSON. Script files are normally an
// array of role records; a single bare object is treated as a
// one-record script. Records with an unknown team (and the _meta
// record) are lifted out of the role list, and the remaining roles are
// sorted by team in sheet order. Within a team, file order is kept.
func ParseScript(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var records []Role
	if err := json.Unmarshal(data, &records); err != nil {
		var single Role
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to decode script JSON: %w", err)
		}
		records = []Role{single}
	}

	script := &Script{}
	teamRank := make(map[string]int, len(SheetTeams()))
	for i, team := range SheetTeams() {
		teamRank[team.String()] = i
	}

	for _, record := range records {
		if record.ID == "_meta" {
			script.Meta = &Meta{Name: record.Name, Author: record.Author}
			continue
		}
		if _, ok := teamRank[record.Team]; !ok {
			continue
		}
		script.Roles = append(script.Roles, record)
	}

	sort.SliceStable(script.Roles, func(i, j int) bool {
		return teamRank[script.Roles[i].Team] < teamRank[script.Roles[j].Team]
	})

	return script, nil
}

// LoadScript reads and parses a script file from disk
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script file: %w", err)
	}
	defer f.Close()

	script, err := ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return script, nil
}

// RolesByTeam groups the script's roles by team. Group contents keep
// the script's role order.
func (s *Script) RolesByTeam() map[Team][]Role {
	grouped := make(map[Team][]Role)
	for _, role := range s.Roles {
		team := TeamFromString(role.Team)
		grouped[team] = append(grouped[team], role)
	}
	return grouped
}

// Title returns the display title for the script, or empty when the
// file carried no _meta record.
func (s *Script) Title() string {
	if s.Meta == nil {
		return ""
	}
	return s.Meta.Name
}
