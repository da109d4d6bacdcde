package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/gofrs/flock"

	"github.com/mmirabella/snipdex/internal/config"
	"github.com/mmirabella/snipdex/internal/update"
)

// lockFileName guards against concurrent index passes over one repository.
const lockFileName = ".snipdex.lock"

// Global context passed to subcommands if we need to share global state later.
type Global struct{}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"snipdex.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Index        IndexCmd        `cmd:"" default:"1" help:"Scan snippet folders and rewrite the index sections"`
	Init         InitCmd         `cmd:"" help:"Write an example configuration file"`
	Status       StatusCmd       `cmd:"" help:"Show per-section snippet counts without writing anything"`
	Watch        WatchCmd        `cmd:"" help:"Watch snippet folders and re-index on changes"`
	RenameVideos RenameVideosCmd `cmd:"" name:"rename-videos" help:"Rename video files to their recording timestamp"`
	Gitignore    GitignoreCmd    `cmd:"" help:"Maintain the repository .gitignore"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// runIndexPass executes one locked scan-and-update pass. The lock enforces
// the single-writer assumption the replacement logic is built on.
func runIndexPass(cfg *config.Config) (*update.Summary, error) {
	lock := flock.New(filepath.Join(cfg.Root, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another snipdex process is updating %s", cfg.Root)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	return update.New(cfg).Run()
}
