package config

// Built-in defaults mirroring the snippet repository layout this tool grew
// up in. A config file overrides them wholesale per top-level key.

const (
	defaultRoot         = "."
	defaultRootDocument = "README.md"

	defaultMarkerStart = "<!-- snippet-index:start -->"
	defaultMarkerEnd   = "<!-- snippet-index:end -->"

	defaultSectionFile        = "README.md"
	defaultSectionEndHeader   = "## How to contribute"
	defaultSectionIndexHeader = "## Snippet index"
)

func defaultNavigation() []NavigationVariant {
	return []NavigationVariant{
		{
			StartHeader: "## How to navigate",
			EndHeader:   "## Indexing",
			IndexHeader: "## Snippet index",
		},
		{
			StartHeader: "## Come navigare",
			EndHeader:   "## Indicizzazione",
			IndexHeader: "## Elenco snippet",
		},
	}
}

func defaultSections() []Section {
	section := func(label, folder string, header string, patterns ...string) Section {
		return Section{
			Label:    label,
			Folder:   folder,
			Patterns: patterns,
			Document: &SectionDocument{StartHeader: header},
		}
	}
	return []Section{
		section("Python", "Python", "# Python Snippets", "**/*.py"),
		section("C", "C", "# C Snippets", "**/*.h", "**/*.c"),
		section("Cpp", "Cpp", "# C++ Snippets", "**/*.hpp", "**/*.cpp"),
		section("MATLAB", "MATLAB", "# MATLAB Snippets", "**/*.m"),
		section("Simulink", "Simulink", "# Simulink Snippets", "**/*.slx"),
		section("Arduino", "Arduino", "# Arduino Snippets", "**/*.ino", "**/*.h", "**/*.cpp"),
		section("STM32", "STM32", "# STM32 Snippets", "**/*.c", "**/*.h", "**/*.cpp"),
	}
}

// Default returns the complete built-in configuration.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Root == "" {
		cfg.Root = defaultRoot
	}
	if cfg.RootDocument == "" {
		cfg.RootDocument = defaultRootDocument
	}
	if cfg.Markers.Start == "" {
		cfg.Markers.Start = defaultMarkerStart
	}
	if cfg.Markers.End == "" {
		cfg.Markers.End = defaultMarkerEnd
	}
	if len(cfg.Navigation) == 0 {
		cfg.Navigation = defaultNavigation()
	}
	if len(cfg.Sections) == 0 {
		cfg.Sections = defaultSections()
	}
	for i := range cfg.Sections {
		doc := cfg.Sections[i].Document
		if doc == nil {
			continue
		}
		if doc.File == "" {
			doc.File = defaultSectionFile
		}
		if doc.EndHeader == "" {
			doc.EndHeader = defaultSectionEndHeader
		}
		if doc.IndexHeader == "" {
			doc.IndexHeader = defaultSectionIndexHeader
		}
	}
}
