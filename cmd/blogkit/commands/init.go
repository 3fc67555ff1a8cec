package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/blogkit/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Output string `short:"o" name:"output" help:"Output directory for generated config file"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	// If the user specified an output directory, place the config there as "blogkit.yaml".
	if i.Output != "" {
		cfgPath := filepath.Join(i.Output, "blogkit.yaml")
		return runInit(cfgPath, i.Force)
	}
	return runInit(root.Config, i.Force)
}

func runInit(configPath string, force bool) error {
	fmt.Printf("Writing configuration to %s\n", configPath)
	if err := config.Init(configPath, force); err != nil {
		return err
	}

	// The scaffolded config points at ./blog/authors.yml; seed it next to the
	// config file so the first build works out of the box.
	authorsPath := filepath.Join(filepath.Dir(configPath), "blog", "authors.yml")
	fmt.Printf("Writing authors map to %s\n", authorsPath)
	if err := config.InitAuthorsFile(authorsPath, force); err != nil {
		return err
	}

	fmt.Println("initialized successfully")
	return nil
}
