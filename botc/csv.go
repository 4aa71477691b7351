package botc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// csvHeaders is the fixed column schema for tabular role exports.
// Column order is part of the contract with downstream spreadsheets and
// must not change.
var csvHeaders = []string{
	"id",
	"name",
	"ability",
	"firstNightReminder",
	"otherNightReminder",
	"remindersGlobal",
	"reminders",
}

// CSVHeaders returns the role export column names in order. The
// returned slice is a copy and may be modified freely by the caller.
func CSVHeaders() []string {
	headers := make([]string, len(csvHeaders))
	copy(headers, csvHeaders)
	return headers
}

// WriteCSV writes the roles as CSV under the fixed header row.
// Multi-value reminder columns are joined with ", ". Role ids are
// written in normalized form.
func WriteCSV(w io.Writer, roles []Role) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, role := range roles {
		record := []string{
			NormalizeRoleID(role.ID),
			role.Name,
			role.Ability,
			role.FirstNightReminder,
			role.OtherNightReminder,
			strings.Join(role.RemindersGlobal, ", "),
			strings.Join(role.Reminders, ", "),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record for %s: %w", role.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
