package commands

import (
	"errors"
	"fmt"

	"git.home.luguber.info/inful/blogkit/internal/authors"
	"git.home.luguber.info/inful/blogkit/internal/config"
)

// ValidateCmd implements the 'validate' command: it loads the authors map
// and reports schema problems without touching the content directory.
type ValidateCmd struct {
	AuthorsFile string `short:"a" name:"authors-file" help:"Authors map file to validate (overrides config)"`
}

func (v *ValidateCmd) Run(_ *Global, root *CLI) error {
	path := v.AuthorsFile
	if path == "" {
		cfg, err := config.Load(root.Config)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		path = cfg.Content.AuthorsFile
	}
	if path == "" {
		return errors.New("no authors file configured; set content.authors_file or pass --authors-file")
	}

	m, err := authors.LoadMap(path)
	if err != nil {
		return err
	}

	fmt.Printf("%s is valid: %d author(s)\n", path, len(m))
	for _, key := range m.Keys() {
		author := m[key]
		page := ""
		if author.HasPage() {
			page = " (page)"
		}
		fmt.Printf("  %s: %s%s\n", key, author.Name, page)
	}
	return nil
}
