package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/blogkit/internal/config"
	"git.home.luguber.info/inful/blogkit/internal/preview"
)

// PreviewCmd starts a local server watching the content directory.
type PreviewCmd struct {
	Port int `name:"port" default:"0" help:"Preview server port (overrides config)"`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Preview == nil {
		cfg.Preview = &config.PreviewConfig{Port: 1313}
	}
	if p.Port != 0 {
		cfg.Preview.Port = p.Port
	}
	// Drafts and future posts are part of the authoring loop.
	cfg.Content.IncludeDrafts = true
	cfg.Content.IncludeFuture = true

	// Signal-based context for graceful shutdown.
	sigctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return preview.Serve(sigctx, cfg)
}
