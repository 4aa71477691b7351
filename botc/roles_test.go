package botc

import (
	"testing"
)

func TestNormalizeRoleID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hyphenated form", input: "pithag", want: "pit-hag"},
		{name: "underscored form", input: "fanggu", want: "fang_gu"},
		{name: "hyphenated demon", input: "alhadikhia", want: "al-hadikhia"},
		{name: "apostrophe demon", input: "lilmonsta", want: "lil-monsta"},
		{name: "plain id passes through", input: "imp", want: "imp"},
		{name: "unknown id passes through", input: "not_a_role", want: "not_a_role"},
		{name: "empty string passes through", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRoleID(tt.input); got != tt.want {
				t.Errorf("NormalizeRoleID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizationKeysAreKnownRoles(t *testing.T) {
	t.Parallel()
	known := make(map[string]bool)
	for _, id := range OrderedRoleIDs() {
		known[id] = true
	}
	for key := range normalizedRoleIDs {
		if !known[key] {
			t.Errorf("normalization key %q is not in the ordered role table", key)
		}
	}
}

func TestNormalizeIsIdentityForPlainRoles(t *testing.T) {
	t.Parallel()
	for _, id := range OrderedRoleIDs() {
		if _, mapped := normalizedRoleIDs[id]; mapped {
			continue
		}
		if got := NormalizeRoleID(id); got != id {
			t.Errorf("NormalizeRoleID(%q) = %q, want identity", id, got)
		}
		// Applying normalization twice to a plain id is a no-op
		if got := NormalizeRoleID(NormalizeRoleID(id)); got != id {
			t.Errorf("double NormalizeRoleID(%q) = %q, want identity", id, got)
		}
	}
}

func TestOrderedRoleIDsHaveNoDuplicates(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	for _, id := range OrderedRoleIDs() {
		if seen[id] {
			t.Errorf("duplicate role id %q", id)
		}
		seen[id] = true
	}
}

func TestOrderedRoleIDsCanonicalOrder(t *testing.T) {
	t.Parallel()
	ids := OrderedRoleIDs()
	if len(ids) == 0 {
		t.Fatal("expected non-empty role table")
	}

	// Trouble Brewing townsfolk open the table, in edition order
	wantPrefix := []string{
		"washerwoman", "librarian", "investigator", "chef", "empath",
		"fortuneteller", "undertaker", "monk", "ravenkeeper", "virgin",
		"slayer", "soldier", "mayor",
	}
	for i, want := range wantPrefix {
		if ids[i] != want {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want)
		}
	}

	// Edition order: the TB demon precedes the BMR townsfolk
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}
	if index["imp"] > index["grandmother"] {
		t.Error("imp should precede grandmother in edition order")
	}
	if index["pithag"] > index["fanggu"] {
		t.Error("minions precede demons within an edition")
	}
}

func TestOrderedRoleIDsReturnsCopy(t *testing.T) {
	t.Parallel()
	first := OrderedRoleIDs()
	first[0] = "tampered"
	if got := OrderedRoleIDs()[0]; got != "washerwoman" {
		t.Errorf("table mutated through returned slice: got %q", got)
	}
}

func TestTeamStringRoundTrip(t *testing.T) {
	t.Parallel()
	teams := []Team{
		TeamTownsfolk, TeamOutsider, TeamMinion, TeamDemon,
		TeamTraveller, TeamFabled,
	}
	for _, team := range teams {
		if got := TeamFromString(team.String()); got != team {
			t.Errorf("TeamFromString(%q) = %v, want %v", team.String(), got, team)
		}
	}
	if got := TeamFromString("jester"); got != TeamUnknown {
		t.Errorf("TeamFromString(jester) = %v, want TeamUnknown", got)
	}
	if got := TeamFromString("traveler"); got != TeamTraveller {
		t.Errorf("single-l traveler spelling should map to TeamTraveller, got %v", got)
	}
}
