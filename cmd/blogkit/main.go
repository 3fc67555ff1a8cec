package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/blogkit/cmd/blogkit/commands"
	"git.home.luguber.info/inful/blogkit/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("blogkit"),
		kong.Description("Blog author pages for static sites: authors map, per-post author resolution, listing pages."),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{}
	if err := ctx.Run(global, &cli); err != nil {
		fmt.Fprintf(os.Stderr, "blogkit: %v\n", err)
		os.Exit(1)
	}
}
