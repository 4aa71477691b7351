package main

import (
	"fmt"

	"github.com/clocktower-tools/scriptgen/botc"
	"github.com/clocktower-tools/scriptgen/internal/browse"
)

// RolesCmd lists every known role id in canonical order
type RolesCmd struct {
	Normalized bool `kong:"help='Print normalized ids instead of raw ids'"`
}

func (c *RolesCmd) Run() error {
	for _, id := range botc.OrderedRoleIDs() {
		if c.Normalized {
			id = botc.NormalizeRoleID(id)
		}
		fmt.Println(id)
	}
	return nil
}

// LocalesCmd lists the supported locale codes
type LocalesCmd struct{}

func (c *LocalesCmd) Run() error {
	for _, locale := range botc.KnownLocales() {
		fmt.Println(locale)
	}
	return nil
}

// NormalizeCmd prints the normalized form of role ids
type NormalizeCmd struct {
	IDs []string `kong:"arg,required,name='id',help='Role ids to normalize'"`
}

func (c *NormalizeCmd) Run() error {
	for _, id := range c.IDs {
		fmt.Println(botc.NormalizeRoleID(id))
	}
	return nil
}

// BrowseCmd opens the interactive role browser
type BrowseCmd struct{}

func (c *BrowseCmd) Run() error {
	return browse.Run()
}
