// Package update orchestrates a full index pass: collect snippet paths,
// render index blocks, and surgically rewrite the marker-delimited regions
// of the root document and each section document.
package update

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mmirabella/snipdex/internal/collect"
	"github.com/mmirabella/snipdex/internal/config"
	"github.com/mmirabella/snipdex/internal/logfields"
	"github.com/mmirabella/snipdex/internal/region"
	"github.com/mmirabella/snipdex/internal/render"
)

// ErrNoNavigationSection is returned when none of the configured navigation
// header variants occurs in the root document.
var ErrNoNavigationSection = errors.New("no navigation section found")

// Updater runs scan-build-render-replace-write passes over one repository.
type Updater struct {
	cfg      *config.Config
	renderer *render.Renderer
	markers  region.Markers
}

// New returns an updater for the given configuration.
func New(cfg *config.Config) *Updater {
	markers := cfg.Markers.Pair()
	return &Updater{
		cfg:      cfg,
		renderer: render.New(markers),
		markers:  markers,
	}
}

// Summary reports what one pass did.
type Summary struct {
	RunID    string
	Snippets int
	// Updated lists the rewritten document paths in processing order,
	// root document first.
	Updated []string
}

// Run executes one full pass. The root document is updated first; a failure
// there aborts the pass before any write. Section document failures are
// collected and joined so one broken document does not stop the others.
func (u *Updater) Run() (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := slog.With(logfields.RunID(runID))

	coll, err := collect.New(u.cfg.Root, u.cfg.Sections).Collect()
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID, Snippets: coll.Total()}
	log.Debug("collected snippet paths", logfields.Count(summary.Snippets))

	if err := u.updateRoot(log, coll, summary); err != nil {
		return nil, err
	}

	var sectionErrs []error
	for _, section := range u.cfg.Sections {
		if err := u.updateSection(log, section, coll, summary); err != nil {
			log.Error("section document update failed",
				logfields.Section(section.Label), logfields.Error(err))
			sectionErrs = append(sectionErrs, fmt.Errorf("section %q: %w", section.Label, err))
		}
	}

	log.Info("index pass finished",
		logfields.Count(len(summary.Updated)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return summary, errors.Join(sectionErrs...)
}

// updateRoot tries each navigation variant in priority order against the
// root document and rewrites the region of the first one that matches.
func (u *Updater) updateRoot(log *slog.Logger, coll *collect.Collection, summary *Summary) error {
	rootPath := filepath.Join(u.cfg.Root, u.cfg.RootDocument)
	lines, err := readLines(rootPath)
	if err != nil {
		return fmt.Errorf("read root document: %w", err)
	}

	folders := make(map[string]string, len(u.cfg.Sections))
	for _, s := range u.cfg.Sections {
		folders[s.Label] = s.Folder
	}

	for _, variant := range u.cfg.Navigation {
		index := u.renderer.GlobalIndex(coll, folders, variant.IndexHeader)
		updated, ok := region.Replace(lines, variant.StartHeader, variant.EndHeader, index, u.markers)
		if !ok {
			continue
		}
		if err := writeLines(rootPath, updated); err != nil {
			return fmt.Errorf("write root document: %w", err)
		}
		summary.Updated = append(summary.Updated, rootPath)
		log.Info("root index updated",
			logfields.Document(rootPath), logfields.Header(variant.StartHeader))
		return nil
	}
	return fmt.Errorf("%s: %w", rootPath, ErrNoNavigationSection)
}

// updateSection rewrites one section's own document, if the section owns a
// header triple and the document exists. A missing document or a document
// without the section's start header is skipped silently.
func (u *Updater) updateSection(log *slog.Logger, section config.Section, coll *collect.Collection, summary *Summary) error {
	if section.Document == nil {
		return nil
	}
	docPath := filepath.Join(u.cfg.Root, section.Folder, section.Document.File)
	if _, err := os.Stat(docPath); os.IsNotExist(err) {
		log.Debug("section document missing, skipped",
			logfields.Section(section.Label), logfields.Document(docPath))
		return nil
	}

	lines, err := readLines(docPath)
	if err != nil {
		return fmt.Errorf("read section document: %w", err)
	}

	index := u.renderer.LocalIndex(coll.Paths(section.Label), section.Document.IndexHeader, filepath.ToSlash(section.Folder))
	updated, ok := region.Replace(lines, section.Document.StartHeader, section.Document.EndHeader, index, u.markers)
	if !ok {
		log.Warn("section document has no matching header, left untouched",
			logfields.Section(section.Label), logfields.Document(docPath),
			logfields.Header(section.Document.StartHeader))
		return nil
	}
	if err := writeLines(docPath, updated); err != nil {
		return fmt.Errorf("write section document: %w", err)
	}
	summary.Updated = append(summary.Updated, docPath)
	log.Info("section index updated",
		logfields.Section(section.Label), logfields.Document(docPath),
		logfields.Count(len(coll.Paths(section.Label))))
	return nil
}
