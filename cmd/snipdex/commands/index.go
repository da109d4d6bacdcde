package commands

import (
	"fmt"

	"github.com/mmirabella/snipdex/internal/config"
)

// IndexCmd implements the 'index' command, the default when none is given.
type IndexCmd struct{}

func (i *IndexCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	summary, err := runIndexPass(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("README files updated: %d document(s), %d snippet(s) indexed.\n",
		len(summary.Updated), summary.Snippets)
	return nil
}
