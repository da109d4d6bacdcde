package commands

import (
	"fmt"

	"github.com/mmirabella/snipdex/internal/videos"
)

// RenameVideosCmd implements the 'rename-videos' command.
type RenameVideosCmd struct {
	Dir    string `arg:"" optional:"" default:"." help:"Directory to scan for video files"`
	DryRun bool   `help:"Show the planned renames without applying them"`
}

func (r *RenameVideosCmd) Run(_ *Global, _ *CLI) error {
	plan, err := videos.Plan(r.Dir)
	if err != nil {
		return err
	}

	for _, rename := range plan {
		fmt.Printf("%s -> %s\n", rename.From, rename.To)
	}
	if len(plan) == 0 {
		fmt.Println("No video files to rename.")
		return nil
	}
	if r.DryRun {
		fmt.Printf("%d rename(s) planned (dry run).\n", len(plan))
		return nil
	}

	if err := videos.Apply(r.Dir, plan); err != nil {
		return err
	}
	fmt.Printf("%d file(s) renamed.\n", len(plan))
	return nil
}
