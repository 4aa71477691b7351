package botc

import (
	"bytes"
	"encoding/csv"
	"testing"
)

func TestCSVHeaders(t *testing.T) {
	t.Parallel()
	want := []string{
		"id", "name", "ability", "firstNightReminder",
		"otherNightReminder", "remindersGlobal", "reminders",
	}
	got := CSVHeaders()
	if len(got) != len(want) {
		t.Fatalf("got %d headers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("headers[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCSVHeadersReturnsCopy(t *testing.T) {
	t.Parallel()
	first := CSVHeaders()
	first[0] = "tampered"
	if got := CSVHeaders()[0]; got != "id" {
		t.Errorf("table mutated through returned slice: got %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	roles := []Role{
		{
			ID:                 "pithag",
			Name:               "Pit-Hag",
			Team:               "minion",
			Ability:            "Each night*, choose a player & a character they become.",
			FirstNightReminder: "",
			OtherNightReminder: "The Pit-Hag points to a player and a character on the sheet.",
			Reminders:          []string{"Good", "Evil"},
		},
		{
			ID:              "imp",
			Name:            "Imp",
			Team:            "demon",
			Ability:         "Each night*, choose a player: they die.",
			RemindersGlobal: []string{"Dead"},
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, roles); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2 roles", len(records))
	}

	if records[0][0] != "id" || records[0][6] != "reminders" {
		t.Errorf("unexpected header row: %v", records[0])
	}
	// Ids are written in normalized form
	if records[1][0] != "pit-hag" {
		t.Errorf("records[1][0] = %q, want pit-hag", records[1][0])
	}
	if records[1][6] != "Good, Evil" {
		t.Errorf("records[1][6] = %q, want joined reminders", records[1][6])
	}
	if records[2][5] != "Dead" {
		t.Errorf("records[2][5] = %q, want Dead", records[2][5])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d rows, want header only", len(records))
	}
}
