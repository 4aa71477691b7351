package main

import (
	"fmt"
	"os"

	"github.com/clocktower-tools/scriptgen/botc"
	"github.com/clocktower-tools/scriptgen/cmd/scriptgen/shared"
)

// CsvCmd exports a script's roles as CSV
type CsvCmd struct {
	Script string `kong:"arg,required,type='existingfile',help='Path to the script JSON file'"`
	Output string `kong:"short='o',help='Output file (defaults to stdout)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *CsvCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	script, err := botc.LoadScript(c.Script)
	if err != nil {
		return err
	}

	out := os.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := botc.WriteCSV(out, script.Roles); err != nil {
		return err
	}
	if c.Output != "" {
		logger.Info("wrote CSV export", "path", c.Output, "roles", len(script.Roles))
	}
	return nil
}
