// Package config loads the optional scriptgen configuration file. The
// file is HCL with a sheet block for rendering and an icons block for
// the icon fetcher; when the file is missing the defaults apply.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete scriptgen configuration
type Config struct {
	Sheet SheetSettings `hcl:"sheet,block"`
	Icons IconSettings  `hcl:"icons,block"`
}

// SheetSettings controls terminal sheet rendering
type SheetSettings struct {
	Width         int    `hcl:"width,optional"`
	TitleColor    string `hcl:"title_color,optional"`
	AccentColor   string `hcl:"accent_color,optional"`
	ShowReminders bool   `hcl:"show_reminders,optional"`
}

// IconSettings controls icon resolution and download
type IconSettings struct {
	Dir             string `hcl:"dir,optional"`
	DownloadTimeout int    `hcl:"download_timeout,optional"`
	Concurrency     int    `hcl:"concurrency,optional"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() *Config {
	return &Config{
		Sheet: SheetSettings{
			Width:         100,
			TitleColor:    "#5C1F22",
			AccentColor:   "#7D56F4",
			ShowReminders: false,
		},
		Icons: IconSettings{
			Dir:             "assets/icons",
			DownloadTimeout: 10,
			Concurrency:     4,
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Sheet.Width < 40 {
		return fmt.Errorf("sheet width %d is too narrow, minimum is 40", c.Sheet.Width)
	}
	if c.Icons.Concurrency < 1 {
		return fmt.Errorf("icons concurrency must be at least 1, got %d", c.Icons.Concurrency)
	}
	if c.Icons.DownloadTimeout < 1 {
		return fmt.Errorf("icons download_timeout must be at least 1 second, got %d", c.Icons.DownloadTimeout)
	}
	return nil
}
