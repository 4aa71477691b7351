package main

import (
	"time"

	"github.com/coder/quartz"

	"github.com/clocktower-tools/scriptgen/botc"
	"github.com/clocktower-tools/scriptgen/cmd/scriptgen/shared"
	"github.com/clocktower-tools/scriptgen/internal/config"
	"github.com/clocktower-tools/scriptgen/internal/icons"
)

// IconsCmd fetches icons for every role in a script
type IconsCmd struct {
	Script string `kong:"arg,required,type='existingfile',help='Path to the script JSON file'"`
	Config string `kong:"default='scriptgen.hcl',help='Path to the configuration file'"`
	Dir    string `kong:"help='Override the configured icon directory'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *IconsCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Dir != "" {
		cfg.Icons.Dir = c.Dir
	}

	script, err := botc.LoadScript(c.Script)
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandler(logger)
	fetcher := icons.NewFetcher(
		cfg.Icons.Dir,
		time.Duration(cfg.Icons.DownloadTimeout)*time.Second,
		cfg.Icons.Concurrency,
		logger,
		quartz.NewReal(),
	)

	if err := fetcher.FetchAll(ctx, script); err != nil {
		return err
	}
	logger.Info("icon fetch complete", "roles", len(script.Roles), "dir", cfg.Icons.Dir)
	return nil
}
