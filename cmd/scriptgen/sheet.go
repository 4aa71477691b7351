package main

import (
	"fmt"

	"github.com/clocktower-tools/scriptgen/botc"
	"github.com/clocktower-tools/scriptgen/cmd/scriptgen/shared"
	"github.com/clocktower-tools/scriptgen/internal/config"
	"github.com/clocktower-tools/scriptgen/internal/sheet"
)

// SheetCmd renders a script file as a terminal sheet
type SheetCmd struct {
	Script    string `kong:"arg,required,type='existingfile',help='Path to the script JSON file'"`
	Config    string `kong:"default='scriptgen.hcl',help='Path to the configuration file'"`
	Reminders bool   `kong:"help='Include night reminder text under each role'"`
	Width     int    `kong:"help='Override the configured sheet width'"`
	Debug     bool   `kong:"help='Enable debug logging'"`
}

func (c *SheetCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Width > 0 {
		cfg.Sheet.Width = c.Width
	}

	script, err := botc.LoadScript(c.Script)
	if err != nil {
		return err
	}
	logger.Debug("loaded script", "title", script.Title(), "roles", len(script.Roles))

	var opts []sheet.Option
	if c.Reminders || cfg.Sheet.ShowReminders {
		opts = append(opts, sheet.WithReminders())
	}

	styles := sheet.NewStyles(cfg.Sheet.TitleColor, cfg.Sheet.AccentColor)
	renderer := sheet.NewRenderer(cfg.Sheet.Width, styles, opts...)
	fmt.Print(renderer.Render(script))
	return nil
}
