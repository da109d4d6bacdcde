package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mmirabella/snipdex/internal/collect"
	"github.com/mmirabella/snipdex/internal/config"
)

// StatusCmd implements the 'status' command: a dry pass that collects
// snippet paths and reports per-section counts without touching documents.
type StatusCmd struct{}

func (s *StatusCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}

	coll, err := collect.New(cfg.Root, cfg.Sections).Collect()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(cfg.Sections))
	for _, section := range cfg.Sections {
		rows = append(rows, []string{
			section.Label,
			section.Folder,
			strconv.Itoa(len(coll.Paths(section.Label))),
			sectionDocumentState(cfg, section),
		})
	}

	fmt.Println(renderTable(
		[]string{"Section", "Folder", "Snippets", "Document"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft},
	))
	fmt.Printf("%d snippet(s) across %d section(s).\n", coll.Total(), len(cfg.Sections))
	return nil
}

func sectionDocumentState(cfg *config.Config, section config.Section) string {
	if section.Document == nil {
		return "-"
	}
	docPath := filepath.Join(cfg.Root, section.Folder, section.Document.File)
	if _, err := os.Stat(docPath); err != nil {
		return "missing"
	}
	return "present"
}
