package ui

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/playdeck/playdeck/internal/config"
	"github.com/playdeck/playdeck/internal/installer"
	"github.com/playdeck/playdeck/internal/media"
	"github.com/playdeck/playdeck/internal/model"
	"github.com/playdeck/playdeck/internal/platform"
	"github.com/playdeck/playdeck/internal/store"
)

// InstalledFilter enumerates visible subsets of games in the UI
type InstalledFilter int

const (
	FilterAll InstalledFilter = iota
	FilterInstalled
	FilterNotInstalled
)

// String returns the display name for the filter tab
func (f InstalledFilter) String() string {
	switch f {
	case FilterAll:
		return "All"
	case FilterInstalled:
		return "Installed"
	case FilterNotInstalled:
		return "Not Installed"
	default:
		return "Unknown"
	}
}

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	store    *store.Store
	cache    *media.Cache
	loader   *media.Loader
	resolver *platform.DefaultPathResolver

	searchEntry   *widget.Entry
	addGameBtn    *widget.Button
	syncBtn       *widget.Button
	gameList      *widget.List
	currentFilter InstalledFilter

	// games is the currently visible slice, guarded against concurrent
	// refresh from the media sync goroutine
	games     []*model.Game
	gamesMu   sync.Mutex
	searchTxt string

	// Search debouncing
	searchTimer *time.Timer

	// UI update debouncing for media sync callbacks
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Media sync cancellation
	syncCancel context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, gameStore *store.Store, cache *media.Cache, loader *media.Loader) *RootUI {
	settings := config.NewSettings(app)

	// Ensure the install directory exists before the user browses to it
	if err := platform.CreateDirectoryIfNotExists(settings.GetInstallDir()); err != nil {
		log.Printf("could not create install directory: %v", err)
	}

	ui := &RootUI{
		window:   window,
		settings: settings,
		store:    gameStore,
		cache:    cache,
		loader:   loader,
		resolver: platform.NewDefaultPathResolver(),
	}

	window.SetTitle("Playdeck")

	// Refresh a game's row as soon as its media lands on disk
	ui.loader.SetCompleteCallback(ui.onMediaComplete)

	ui.setupUI()
	ui.reloadGames()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Search entry with debounce so each keystroke does not hit the store
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder("Search games")
	ui.searchEntry.OnChanged = ui.onSearchChanged

	ui.addGameBtn = widget.NewButton(IconGamepad+" Add Game", ui.onAddGame)
	ui.syncBtn = widget.NewButton(IconSync+" Sync Media", ui.onSyncMedia)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	var topPanel *fyne.Container
	buttons := container.NewHBox(ui.addGameBtn, ui.syncBtn)
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), buttons, ui.searchEntry)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), buttons, ui.searchEntry)
	}

	// Notification panel under the search row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Filter tabs
	tabs := container.NewAppTabs(
		container.NewTabItem(FilterAll.String(), widget.NewLabel("")),
		container.NewTabItem(FilterInstalled.String(), widget.NewLabel("")),
		container.NewTabItem(FilterNotInstalled.String(), widget.NewLabel("")),
	)
	tabs.OnSelected = func(item *container.TabItem) {
		switch item.Text {
		case FilterInstalled.String():
			ui.currentFilter = FilterInstalled
		case FilterNotInstalled.String():
			ui.currentFilter = FilterNotInstalled
		default:
			ui.currentFilter = FilterAll
		}
		ui.reloadGames()
	}

	topCombined := container.NewVBox(topPanel, ui.notificationContainer, tabs)

	ui.gameList = widget.NewList(
		func() int {
			ui.gamesMu.Lock()
			defer ui.gamesMu.Unlock()
			return len(ui.games)
		},
		func() fyne.CanvasObject { return ui.createGameItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateGameItem(id, obj) },
	)

	ui.currentFilter = FilterAll

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		ui.gameList, // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	libraryMenu := fyne.NewMenu("Library",
		fyne.NewMenuItem("Add Game", ui.onAddGame),
		fyne.NewMenuItem("Install from Script...", ui.onInstallFromScript),
		fyne.NewMenuItem("Sync Media", ui.onSyncMedia),
	)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
		libraryMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onSearchChanged restarts the debounce timer for the search query
func (ui *RootUI) onSearchChanged(text string) {
	ui.searchTxt = strings.TrimSpace(text)

	if ui.searchTimer != nil {
		ui.searchTimer.Stop()
	}
	ui.searchTimer = time.AfterFunc(SearchDebounce, func() {
		fyne.Do(ui.reloadGames)
	})
}

// reloadGames re-queries the store with the current search and filter
func (ui *RootUI) reloadGames() {
	games, err := ui.store.Search(ui.searchTxt)
	if err != nil {
		log.Printf("Error loading games: %v", err)
		ui.showNotification(IconError+" Error loading games: "+err.Error(), false)
		return
	}

	filtered := games[:0]
	for _, game := range games {
		if ui.shouldShowGame(game) {
			filtered = append(filtered, game)
		}
	}

	ui.gamesMu.Lock()
	ui.games = filtered
	ui.gamesMu.Unlock()

	ui.gameList.Refresh()
}

// shouldShowGame returns whether a game passes the current filter
func (ui *RootUI) shouldShowGame(game *model.Game) bool {
	switch ui.currentFilter {
	case FilterInstalled:
		return game.Installed
	case FilterNotInstalled:
		return !game.Installed
	default:
		return true
	}
}

// createGameItem creates a new game row widget for the list
func (ui *RootUI) createGameItem() fyne.CanvasObject {
	placeholder := &model.Game{Name: "Loading...", Slug: "loading"}

	row := NewGameRow(placeholder, ui.iconPath)
	row.SetCallbacks(ui.onPlayGame, ui.onInstallGame, ui.onRevealDirectory, ui.onRemoveGame)
	return row
}

// updateGameItem updates a game row with current data
func (ui *RootUI) updateGameItem(id widget.ListItemID, item fyne.CanvasObject) {
	ui.gamesMu.Lock()
	var game *model.Game
	if id < len(ui.games) {
		game = ui.games[id]
	}
	ui.gamesMu.Unlock()

	if game == nil {
		return
	}

	if row, ok := item.(*GameRow); ok {
		// Re-set callbacks every time, rows are recycled across games
		row.SetCallbacks(ui.onPlayGame, ui.onInstallGame, ui.onRevealDirectory, ui.onRemoveGame)
		row.UpdateGame(game)
	}
}

// iconPath resolves a slug to its cached icon file
func (ui *RootUI) iconPath(slug string) string {
	path, err := ui.cache.Path(slug, model.MediaIcon)
	if err != nil {
		return ""
	}
	return path
}

// showNotification displays a message in the notification panel under the
// search input. When spinning is true, a spinner indicates background work.
func (ui *RootUI) showNotification(message string, spinning bool) {
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window, ui.resolver)
	sd.OnSaved = func() {
		ui.cache.SetOverwrite(ui.settings.GetOverwriteMedia())
	}
	sd.Show()
}

// onSyncMedia downloads icons for every game in the library
func (ui *RootUI) onSyncMedia() {
	urls, err := ui.store.MediaURLs("")
	if err != nil {
		log.Printf("Error collecting media URLs: %v", err)
		ui.showNotification(IconError+" Error collecting media URLs: "+err.Error(), false)
		return
	}
	if len(urls) == 0 {
		ui.showNotification("No game media to download.", false)
		return
	}

	if ui.syncCancel != nil {
		ui.syncCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.syncCancel = cancel

	ui.showNotification("Downloading game media...", true)
	ui.syncBtn.Disable()

	go func() {
		defer cancel()

		result := ui.loader.DownloadMedia(ctx, urls, model.MediaIcon)
		log.Printf("Media sync finished: %d total, %d completed, %d skipped, %d failed",
			result.Total, result.Completed, result.Skipped, result.Failed)

		summary := "Media sync finished: " +
			strconv.Itoa(result.Completed) + " downloaded, " +
			strconv.Itoa(result.Skipped) + " cached, " +
			strconv.Itoa(result.Failed) + " failed"
		ui.showNotification(summary, false)

		fyne.Do(func() {
			ui.syncBtn.Enable()
			ui.gameList.Refresh()
		})
	}()
}

// onMediaComplete handles a finished media download. It fires from a loader
// worker goroutine, so all widget access goes through fyne.Do.
func (ui *RootUI) onMediaComplete(job *model.MediaJob) {
	log.Printf("Media ready for %q: %s", job.Slug, job.OutputPath)

	if !ui.debouncedUIUpdate() {
		return
	}
	fyne.Do(func() {
		ui.gameList.Refresh()
	})
}

// debouncedUIUpdate prevents excessive list refreshes by limiting frequency.
// Returns false when the update should be skipped.
func (ui *RootUI) debouncedUIUpdate() bool {
	ui.uiUpdateMutex.Lock()
	defer ui.uiUpdateMutex.Unlock()

	now := time.Now()
	if now.Sub(ui.lastUIUpdate) < UIUpdateDebounce {
		return false
	}
	ui.lastUIUpdate = now
	return true
}

// onPlayGame handles the play button click
func (ui *RootUI) onPlayGame(gameID int64) {
	game, err := ui.store.Get(gameID)
	if err != nil {
		log.Printf("Error loading game %d: %v", gameID, err)
		widget.ShowPopUp(widget.NewLabel("Game not found"), ui.window.Canvas())
		return
	}

	log.Printf("Launching %q with runner %q", game.Slug, game.Runner)
	ui.showNotification("Launching "+game.DisplayName()+"...", true)
	time.AfterFunc(3*time.Second, ui.hideNotification)
}

// onInstallGame prompts for an install location and marks the game installed
func (ui *RootUI) onInstallGame(gameID int64) {
	game, err := ui.store.Get(gameID)
	if err != nil {
		log.Printf("Error loading game %d: %v", gameID, err)
		widget.ShowPopUp(widget.NewLabel("Game not found"), ui.window.Canvas())
		return
	}

	// Installing into a non-empty or NTFS directory is a common source of
	// broken installs, surface both warnings.
	pathEntry := NewPathEntry(ui.window, PickFolder, platform.PathTypeInstallTo, ui.resolver, WarningOptions{
		WarnNonEmpty: true,
		WarnNTFS:     true,
	})
	pathEntry.DefaultPath = ui.settings.GetInstallDir()
	pathEntry.SetText(platform.ReverseExpandUser(
		ui.resolver.Resolve(platform.DefaultPathQuery{
			Default: ui.settings.GetInstallDir(),
			Type:    platform.PathTypeInstallTo,
		})))

	form := container.NewVBox(
		widget.NewLabel("Install "+game.DisplayName()+" to:"),
		pathEntry,
	)

	installDialog := dialog.NewCustomConfirm(
		"Install Game",
		"Install",
		"Cancel",
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			directory := pathEntry.Path()
			if directory == "" {
				widget.ShowPopUp(widget.NewLabel("No install directory selected"), ui.window.Canvas())
				return
			}
			if err := platform.CreateDirectoryIfNotExists(directory); err != nil {
				log.Printf("Error creating %s: %v", directory, err)
				widget.ShowPopUp(widget.NewLabel("Error creating directory: "+err.Error()), ui.window.Canvas())
				return
			}
			if err := ui.store.MarkInstalled(gameID, directory); err != nil {
				log.Printf("Error marking game %d installed: %v", gameID, err)
				widget.ShowPopUp(widget.NewLabel("Error saving game: "+err.Error()), ui.window.Canvas())
				return
			}
			ui.resolver.SetSelected(directory, platform.PathTypeInstallTo)
			ui.reloadGames()
		},
		ui.window,
	)
	installDialog.Resize(fyne.NewSize(520, 240))
	installDialog.Show()
}

// onRevealDirectory opens the game directory in the system file manager
func (ui *RootUI) onRevealDirectory(directory string) {
	if directory == "" {
		widget.ShowPopUp(widget.NewLabel("No directory set for this game"), ui.window.Canvas())
		return
	}

	if err := platform.RevealInFileManager(directory); err != nil {
		log.Printf("Error revealing %s: %v", directory, err)
		widget.ShowPopUp(widget.NewLabel("Error opening directory: "+err.Error()), ui.window.Canvas())
	}
}

// onRemoveGame removes a game from the library after confirmation
func (ui *RootUI) onRemoveGame(gameID int64) {
	game, err := ui.store.Get(gameID)
	if err != nil {
		log.Printf("Error loading game %d: %v", gameID, err)
		return
	}

	dialog.ShowConfirm(
		"Remove Game",
		"Remove "+game.DisplayName()+" from the library? Files on disk are kept.",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if err := ui.store.Remove(gameID); err != nil {
				log.Printf("Error removing game %d: %v", gameID, err)
				widget.ShowPopUp(widget.NewLabel("Error removing game: "+err.Error()), ui.window.Canvas())
				return
			}
			ui.reloadGames()
		},
		ui.window,
	)
}

// onInstallFromScript parses an installer script and adds its game to the
// library
func (ui *RootUI) onInstallFromScript() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			log.Printf("Error reading script %s: %v", reader.URI(), err)
			widget.ShowPopUp(widget.NewLabel("Error reading script: "+err.Error()), ui.window.Canvas())
			return
		}

		script, err := installer.Parse(data)
		if err != nil {
			log.Printf("Error parsing script %s: %v", reader.URI(), err)
			widget.ShowPopUp(widget.NewLabel("Error parsing script: "+err.Error()), ui.window.Canvas())
			return
		}

		if problems := script.Validate(); len(problems) > 0 {
			log.Printf("Script %s failed validation: %v", reader.URI(), problems)
			dialog.ShowInformation("Invalid Script",
				"The script has problems:\n- "+strings.Join(problems, "\n- "), ui.window)
			return
		}

		game := model.NewGame(script.GameName())
		if script.GameSlug != "" {
			game.Slug = script.GameSlug
		}
		game.Runner = script.Runner
		game.Year = script.Year

		if err := ui.store.Add(game); err != nil {
			log.Printf("Error adding game %q from script: %v", game.Slug, err)
			widget.ShowPopUp(widget.NewLabel("Error adding game: "+err.Error()), ui.window.Canvas())
			return
		}

		log.Printf("Added game %q (id=%d) from installer script", game.Slug, game.ID)
		ui.reloadGames()

		if file, ok := script.UserProvidedFile(); ok {
			dialog.ShowInformation("File Required",
				"This installer needs a file you have to locate yourself:\n"+file.Filename, ui.window)
		}

		if script.CreatesGameFolder() {
			ui.onInstallGame(game.ID)
		}
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".yml", ".yaml"}))
	fileDialog.Show()
}

// onAddGame shows the add-game dialog
func (ui *RootUI) onAddGame() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Game name")

	slugEntry := NewSlugEntry()
	slugEntry.SetPlaceHolder("Identifier (derived from name)")

	// Keep the slug in sync with the name until the user edits it directly.
	// SetText fires OnFiltered too, so mark programmatic writes.
	slugTouched := false
	syncingSlug := false
	slugEntry.OnFiltered = func(string) {
		if !syncingSlug {
			slugTouched = true
		}
	}
	nameEntry.OnChanged = func(name string) {
		if !slugTouched {
			syncingSlug = true
			slugEntry.SetText(model.Slugify(name))
			syncingSlug = false
		}
	}

	yearEntry := NewNumberEntry()
	yearEntry.SetPlaceHolder("Release year")

	runnerSelect := widget.NewSelect([]string{"linux", "wine", "steam", "libretro"}, nil)
	runnerSelect.PlaceHolder = "Select runner"

	dirEntry := NewPathEntry(ui.window, PickFolder, platform.PathTypeInstallTo, ui.resolver, WarningOptions{})
	dirEntry.DefaultPath = ui.settings.GetInstallDir()

	// Free-form details, e.g. an "icon" URL picked up by media sync
	detailsModel := NewGridModel(nil)
	detailsGrid := NewEditableGrid(detailsModel, "Key", "Value")

	form := container.NewVBox(
		widget.NewLabel("Name:"), nameEntry,
		widget.NewLabel("Identifier:"), slugEntry,
		widget.NewLabel("Runner:"), runnerSelect,
		widget.NewLabel("Release Year:"), yearEntry,
		widget.NewLabel("Directory:"), dirEntry,
		widget.NewLabel("Details:"), detailsGrid,
	)

	addDialog := dialog.NewCustomConfirm(
		"Add Game",
		"Add",
		"Cancel",
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}

			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				widget.ShowPopUp(widget.NewLabel("Game name is required"), ui.window.Canvas())
				return
			}

			game := model.NewGame(name)
			if slug := slugEntry.Text; slug != "" {
				game.Slug = slug
			}
			game.Runner = runnerSelect.Selected
			game.Directory = dirEntry.Path()
			if game.Directory != "" {
				game.Installed = true
			}
			if yearText := yearEntry.Text; yearText != "" {
				if year, err := strconv.Atoi(yearText); err == nil {
					game.Year = year
				}
			}

			details := make(map[string]string)
			for _, row := range detailsModel.Rows() {
				if row[0] != "" {
					details[row[0]] = row[1]
				}
			}
			if len(details) > 0 {
				if encoded, err := json.Marshal(details); err == nil {
					game.Details = string(encoded)
				}
			}

			if err := ui.store.Add(game); err != nil {
				log.Printf("Error adding game %q: %v", game.Slug, err)
				widget.ShowPopUp(widget.NewLabel("Error adding game: "+err.Error()), ui.window.Canvas())
				return
			}

			log.Printf("Added game %q (id=%d)", game.Slug, game.ID)
			ui.reloadGames()
		},
		ui.window,
	)
	addDialog.Resize(fyne.NewSize(520, 480))
	addDialog.Show()
}
