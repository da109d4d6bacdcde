package commands

import (
	"fmt"

	"github.com/mmirabella/snipdex/internal/gitignore"
)

// GitignoreCmd groups the .gitignore maintenance subcommands.
type GitignoreCmd struct {
	Add GitignoreAddCmd `cmd:"" help:"Append an entry to .gitignore if not already present"`
}

// GitignoreAddCmd implements 'gitignore add'.
type GitignoreAddCmd struct {
	Entry string `arg:"" help:"Path or pattern to ignore"`
	Root  string `short:"r" default:"." help:"Repository root"`
}

func (g *GitignoreAddCmd) Run(_ *Global, _ *CLI) error {
	entry, changed, err := gitignore.Add(g.Root, g.Entry)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("'%s' is already listed in .gitignore.\n", entry)
		return nil
	}
	fmt.Printf("'%s' added to .gitignore.\n", entry)
	return nil
}
