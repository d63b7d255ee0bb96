package installer

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UserProvidedURLPrefix marks files the user must supply themselves
const UserProvidedURLPrefix = "N/A"

// Runners with special validation or install-location rules
const (
	RunnerSteam     = "steam"
	RunnerWineSteam = "winesteam"
	RunnerLibretro  = "libretro"
)

// File is one downloadable (or user provided) file of an installer
type File struct {
	ID       string
	URL      string
	Filename string
}

// UserProvided reports whether the user has to locate this file manually
func (f File) UserProvided() bool {
	return strings.HasPrefix(f.URL, UserProvidedURLPrefix)
}

// Body is the nested script section of an installer document
type Body struct {
	Game       map[string]any   `yaml:"game"`
	Files      []map[string]any `yaml:"files"`
	Installer  []map[string]any `yaml:"installer"`
	System     map[string]any   `yaml:"system"`
	Requires   string           `yaml:"requires"`
	Extends    string           `yaml:"extends"`
	CustomName string           `yaml:"custom-name"`

	// Launcher shortcuts allowed at the script root
	Exe      string `yaml:"exe"`
	Exe64    string `yaml:"exe64"`
	ISO      string `yaml:"iso"`
	ROM      string `yaml:"rom"`
	Disk     string `yaml:"disk"`
	MainFile string `yaml:"main_file"`
}

// Script is a parsed installer document
type Script struct {
	Version  string `yaml:"version"`
	Slug     string `yaml:"slug"`
	Name     string `yaml:"name"`
	GameSlug string `yaml:"game_slug"`
	Runner   string `yaml:"runner"`
	Year     int    `yaml:"year"`
	SteamID  string `yaml:"steamid"`
	GogID    string `yaml:"gogid"`
	Script   Body   `yaml:"script"`

	files []File
}

// Parse decodes an installer document from YAML
func Parse(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("invalid installer script: %w", err)
	}
	if err := script.normalizeFiles(); err != nil {
		return nil, err
	}
	return &script, nil
}

// normalizeFiles flattens the two YAML spellings of a file entry: a bare
// `id: url` pair or an `id: {url, filename}` mapping.
func (s *Script) normalizeFiles() error {
	for _, entry := range s.Script.Files {
		for id, value := range entry {
			file := File{ID: id}
			switch v := value.(type) {
			case string:
				file.URL = v
			case map[string]any:
				if url, ok := v["url"].(string); ok {
					file.URL = url
				}
				if filename, ok := v["filename"].(string); ok {
					file.Filename = filename
				}
			default:
				return fmt.Errorf("invalid file entry %q", id)
			}
			if file.Filename == "" {
				file.Filename = filenameFromURL(file.URL)
			}
			s.files = append(s.files, file)
		}
	}
	return nil
}

// filenameFromURL guesses a filename from the last URL path segment,
// query string stripped
func filenameFromURL(url string) string {
	url, _, _ = strings.Cut(url, "?")
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}
	return url
}

// Files returns the installer's file list
func (s *Script) Files() []File {
	return s.files
}

// GameName returns the custom name when the script sets one
func (s *Script) GameName() string {
	if s.Script.CustomName != "" {
		return s.Script.CustomName
	}
	return s.Name
}

// UserProvidedFile returns the first file the user must supply, if any
func (s *Script) UserProvidedFile() (File, bool) {
	for _, file := range s.files {
		if file.UserProvided() {
			return file, true
		}
	}
	return File{}, false
}

// Validate returns all problems with the script, not just the first one
func (s *Script) Validate() []string {
	var errors []string

	if s.Runner == "" {
		errors = append(errors, "Missing field 'runner'")
	}
	if s.GameName() == "" {
		errors = append(errors, "Missing field 'name'")
	}
	if s.GameSlug == "" {
		errors = append(errors, "Missing field 'game_slug'")
	}

	// Libretro installers must name a core
	if s.Runner == RunnerLibretro {
		if _, ok := s.Script.Game["core"]; !ok {
			errors = append(errors, "Missing libretro core in game section")
		}
	}

	// Steam games need an AppID
	if s.Runner == RunnerSteam || s.Runner == RunnerWineSteam {
		if _, ok := s.Script.Game["appid"]; !ok {
			errors = append(errors, "Missing appid for Steam game")
		}
	}

	if s.Script.Requires != "" && s.Script.Extends != "" {
		errors = append(errors, "Scripts can't have both extends and requires")
	}

	return errors
}

// CreatesGameFolder determines whether installing this script should create
// a dedicated game directory
func (s *Script) CreatesGameFolder() bool {
	if s.Script.Requires != "" {
		// Extension of an existing game, folder exists
		return false
	}
	if s.Runner == RunnerSteam || s.Runner == RunnerWineSteam {
		// Steam games install into their steamapps directory
		return false
	}
	if len(s.files) > 0 {
		return true
	}
	if _, ok := s.Script.Game["gog"]; ok {
		return true
	}
	if _, ok := s.Script.Game["prefix"]; ok {
		return true
	}
	for _, command := range s.Script.Installer {
		for name := range command {
			if name == "insert-disc" {
				return true
			}
		}
	}
	return false
}

// Launcher returns the config key and value pointing at the game's main
// file. exe64 is preferred over exe on 64-bit systems and reported as exe.
func (s *Script) Launcher(sixtyFourBit bool) (string, string) {
	if sixtyFourBit && s.Script.Exe64 != "" {
		return "exe", s.Script.Exe64
	}

	candidates := []struct {
		key   string
		value string
	}{
		{"exe", s.Script.Exe},
		{"iso", s.Script.ISO},
		{"rom", s.Script.ROM},
		{"disk", s.Script.Disk},
		{"main_file", s.Script.MainFile},
	}

	for _, candidate := range candidates {
		if candidate.value != "" {
			return candidate.key, candidate.value
		}
	}
	return "", ""
}

// SubstituteVars replaces $NAME tokens in value with entries from vars,
// longest names first so $GAMEDIR2 is never clobbered by $GAMEDIR
func SubstituteVars(value string, vars map[string]string) string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	// insertion-order maps would make replacement order random
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if len(names[j]) > len(names[i]) {
				names[i], names[j] = names[j], names[i]
			}
		}
	}
	for _, name := range names {
		value = strings.ReplaceAll(value, "$"+name, vars[name])
	}
	return value
}
