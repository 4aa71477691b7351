package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Sheet     SheetCmd         `cmd:"" help:"Render a script file as a terminal script sheet"`
	Csv       CsvCmd           `cmd:"" name:"csv" help:"Export a script's roles as CSV"`
	Roles     RolesCmd         `cmd:"" help:"List every known role id in canonical order"`
	Locales   LocalesCmd       `cmd:"" help:"List the supported locale codes"`
	Normalize NormalizeCmd     `cmd:"" help:"Print the normalized form of role ids"`
	Icons     IconsCmd         `cmd:"" help:"Fetch icons for every role in a script"`
	Browse    BrowseCmd        `cmd:"" help:"Browse the role table interactively"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("scriptgen"),
		kong.Description("Blood on the Clocktower script sheet and export tooling"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
