package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/playdeck/playdeck/internal/platform"
)

// PathEntryMode selects whether the browse button picks files or folders
type PathEntryMode int

const (
	PickFile PathEntryMode = iota
	PickFolder
)

// PathEntry is an editable path with a browse button. Risky selections
// grow warning labels under the entry as the text changes.
type PathEntry struct {
	widget.BaseWidget

	entry     *widget.Entry
	browseBtn *widget.Button
	warnBox   *fyne.Container

	window   fyne.Window
	mode     PathEntryMode
	pathType platform.PathType
	resolver *platform.DefaultPathResolver
	options  WarningOptions

	// Defaults fed into the path resolver
	DefaultPath  string
	InstallPath  string
	MainFilePath string

	// OnChanged fires with the expanded path on every edit
	OnChanged func(path string)
}

// NewPathEntry creates a path entry for the window. The resolver decides
// where browsing starts and remembers what the user picks.
func NewPathEntry(window fyne.Window, mode PathEntryMode, pathType platform.PathType, resolver *platform.DefaultPathResolver, options WarningOptions) *PathEntry {
	pe := &PathEntry{
		window:   window,
		mode:     mode,
		pathType: pathType,
		resolver: resolver,
		options:  options,
	}
	pe.ExtendBaseWidget(pe)

	pe.entry = widget.NewEntry()
	pe.entry.SetPlaceHolder("Select a path")
	pe.entry.OnChanged = pe.onEntryChanged

	pe.browseBtn = widget.NewButtonWithIcon("Browse...", theme.FolderOpenIcon(), pe.onBrowse)
	pe.warnBox = container.NewVBox()

	return pe
}

// SetText sets the entry text, triggering warning recomputation
func (pe *PathEntry) SetText(path string) {
	pe.entry.SetText(path)
}

// Text returns the raw entry text
func (pe *PathEntry) Text() string {
	return pe.entry.Text
}

// Path returns the entry text with ~ expanded
func (pe *PathEntry) Path() string {
	return platform.ExpandUser(pe.entry.Text)
}

// CreateRenderer lays out the entry row and the warning area below it
func (pe *PathEntry) CreateRenderer() fyne.WidgetRenderer {
	row := container.NewBorder(nil, nil, nil, pe.browseBtn, pe.entry)
	content := container.NewVBox(row, pe.warnBox)
	return widget.NewSimpleRenderer(content)
}

// onEntryChanged recomputes warnings for the typed path
func (pe *PathEntry) onEntryChanged(text string) {
	pe.warnBox.Objects = nil

	if text != "" {
		for _, warning := range CheckPath(text, pe.options) {
			label := widget.NewLabel(warning.Message())
			label.Wrapping = fyne.TextWrapWord
			label.Importance = widget.WarningImportance
			pe.warnBox.Add(label)
		}
	}
	pe.warnBox.Refresh()

	if pe.OnChanged != nil {
		pe.OnChanged(pe.Path())
	}
}

// onBrowse opens the file or folder dialog at the resolved default path
func (pe *PathEntry) onBrowse() {
	startDir := pe.resolver.Resolve(platform.DefaultPathQuery{
		Entry:        pe.Path(),
		Default:      pe.DefaultPath,
		MainFilePath: pe.MainFilePath,
		InstallPath:  pe.InstallPath,
		Type:         pe.pathType,
	})

	location, err := storage.ListerForURI(storage.NewFileURI(startDir))

	if pe.mode == PickFolder {
		folderDialog := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			pe.onSelected(uri.Path())
		}, pe.window)
		if err == nil {
			folderDialog.SetLocation(location)
		}
		folderDialog.Show()
		return
	}

	fileDialog := dialog.NewFileOpen(func(uri fyne.URIReadCloser, err error) {
		if err != nil || uri == nil {
			return
		}
		uri.Close()
		pe.onSelected(uri.URI().Path())
	}, pe.window)
	if err == nil {
		fileDialog.SetLocation(location)
	}
	fileDialog.Show()
}

// onSelected stores the picked path for future defaults and displays it
// home-relative
func (pe *PathEntry) onSelected(path string) {
	pe.resolver.SetSelected(path, pe.pathType)
	pe.entry.SetText(platform.ReverseExpandUser(path))
}
