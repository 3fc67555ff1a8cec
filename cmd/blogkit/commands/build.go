package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/blogkit/internal/build"
	"git.home.luguber.info/inful/blogkit/internal/config"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output        string `short:"o" help:"Output directory for generated pages (overrides config)"`
	IncludeDrafts bool   `name:"include-drafts" help:"Include posts marked draft"`
	IncludeFuture bool   `name:"include-future" help:"Include posts dated in the future"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.IncludeDrafts {
		cfg.Content.IncludeDrafts = true
	}
	if b.IncludeFuture {
		cfg.Content.IncludeFuture = true
	}

	result, err := build.New(cfg, nil).Run(context.Background())
	if err != nil {
		return err
	}

	// Friendly user-facing summary on stdout.
	fmt.Printf("Built author pages for %d author(s) from %d post(s) into %s\n",
		len(result.AuthorsMap), len(result.Posts), cfg.Output.Directory)
	return nil
}
