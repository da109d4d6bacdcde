package commands

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mmirabella/snipdex/internal/config"
	"github.com/mmirabella/snipdex/internal/logfields"
)

// WatchCmd implements the 'watch' command: monitor the section folders and
// re-run the index pass after changes settle. Passes run strictly serially.
type WatchCmd struct {
	Debounce time.Duration `help:"Delay before re-indexing after a change" default:"500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addSectionFolders(watcher, cfg); err != nil {
		return err
	}

	// Initial pass so the index reflects the state at startup.
	if _, err := runIndexPass(cfg); err != nil {
		return err
	}
	slog.Info("watching for snippet changes", logfields.Folder(cfg.Root))

	timer := time.NewTimer(w.Debounce)
	stopTimer(timer)

	for {
		select {
		case <-ctx.Done():
			slog.Info("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ignoreEvent(cfg, event) {
				continue
			}
			// New subdirectories join the watch set so nested snippets are seen.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						slog.Warn("cannot watch new directory",
							logfields.Folder(event.Name), logfields.Error(err))
					}
				}
			}
			slog.Debug("change detected", logfields.Document(event.Name))
			stopTimer(timer)
			timer.Reset(w.Debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", logfields.Error(err))

		case <-timer.C:
			if _, err := runIndexPass(cfg); err != nil {
				slog.Error("index pass failed", logfields.Error(err))
			}
		}
	}
}

// addSectionFolders registers every existing section folder and its
// subdirectories. Missing folders are skipped; they contribute nothing to
// the index either.
func addSectionFolders(watcher *fsnotify.Watcher, cfg *config.Config) error {
	for _, section := range cfg.Sections {
		base := filepath.Join(cfg.Root, section.Folder)
		if info, err := os.Stat(base); err != nil || !info.IsDir() {
			continue
		}
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil || !d.IsDir() {
				return err
			}
			return watcher.Add(path)
		})
		if err != nil {
			return fmt.Errorf("watch %s: %w", base, err)
		}
	}
	return nil
}

// ignoreEvent filters events the pass itself produces: document rewrites,
// the lock file, and dotfiles in general. Chmod-only events carry no
// content change.
func ignoreEvent(cfg *config.Config, event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return true
	}
	base := filepath.Base(event.Name)
	if base == cfg.RootDocument || base == lockFileName {
		return true
	}
	for _, section := range cfg.Sections {
		if section.Document != nil && base == section.Document.File {
			return true
		}
	}
	return strings.HasPrefix(base, ".")
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
