package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/playdeck/playdeck/internal/config"
	"github.com/playdeck/playdeck/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	// UI components
	installDirEntry  *PathEntry
	cacheDirEntry    *widget.Entry
	maxParallelEntry *widget.Entry
	overwriteCheck   *widget.Check
	darkThemeCheck   *widget.Check

	// OnSaved fires after the settings were written
	OnSaved func()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window, resolver *platform.DefaultPathResolver) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI(resolver)
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI(resolver *platform.DefaultPathResolver) {
	// Install directory: a risky pick here affects every install, so warn
	// about NTFS and non-empty targets up front.
	sd.installDirEntry = NewPathEntry(sd.window, PickFolder, platform.PathTypeInstallTo, resolver, WarningOptions{
		WarnNonEmpty: true,
		WarnNTFS:     true,
	})

	// Media cache directory
	sd.cacheDirEntry = widget.NewEntry()
	sd.cacheDirEntry.SetPlaceHolder("Media cache directory path")

	browseCacheBtn := widget.NewButton("Browse", sd.onBrowseCacheDirectory)
	cacheDirRow := container.NewBorder(nil, nil, nil, browseCacheBtn, sd.cacheDirEntry)

	// Max parallel media downloads
	sd.maxParallelEntry = widget.NewEntry()
	sd.maxParallelEntry.SetPlaceHolder("1-16")

	sd.overwriteCheck = widget.NewCheck("Re-download media that is already cached", nil)
	sd.darkThemeCheck = widget.NewCheck("Dark theme", nil)

	// Create form
	form := container.NewVBox(
		widget.NewLabel("Library Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Install Directory:"),
		sd.installDirEntry,

		widget.NewSeparator(),
		widget.NewLabel("Media Settings"),
		widget.NewSeparator(),

		widget.NewLabel("Media Cache Directory:"),
		cacheDirRow,

		widget.NewLabel("Max Parallel Downloads:"),
		sd.maxParallelEntry,

		sd.overwriteCheck,

		widget.NewSeparator(),
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),

		sd.darkThemeCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(520, 480))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.installDirEntry.SetText(platform.ReverseExpandUser(sd.settings.GetInstallDir()))
	sd.cacheDirEntry.SetText(sd.settings.GetMediaCacheDir())
	sd.maxParallelEntry.SetText(strconv.Itoa(sd.settings.GetMaxParallelMedia()))
	sd.overwriteCheck.SetChecked(sd.settings.GetOverwriteMedia())
	sd.darkThemeCheck.SetChecked(sd.settings.GetDarkTheme())
}

// onBrowseCacheDirectory handles cache directory browsing
func (sd *SettingsDialog) onBrowseCacheDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.cacheDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if installDir := sd.installDirEntry.Path(); installDir != "" {
		sd.settings.SetInstallDir(installDir)
	}

	if cacheDir := sd.cacheDirEntry.Text; cacheDir != "" {
		sd.settings.SetMediaCacheDir(cacheDir)
	}

	if maxParallelStr := sd.maxParallelEntry.Text; maxParallelStr != "" {
		if maxParallel, err := strconv.Atoi(maxParallelStr); err == nil {
			sd.settings.SetMaxParallelMedia(maxParallel)
		}
	}

	sd.settings.SetOverwriteMedia(sd.overwriteCheck.Checked)
	sd.settings.SetDarkTheme(sd.darkThemeCheck.Checked)

	if sd.OnSaved != nil {
		sd.OnSaved()
	}

	dialog.ShowInformation("Settings", "Settings saved successfully!", sd.window)
}
