package ui

import (
	"image/color"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/playdeck/playdeck/internal/model"
)

// GameRow represents a compact game row widget
type GameRow struct {
	widget.BaseWidget

	game *model.Game

	// UI components
	icon        *canvas.Image
	titleLabel  *widget.Label
	runnerLabel *widget.Label
	statusLabel *widget.Label

	// Action buttons
	playBtn   *widget.Button
	revealBtn *widget.Button
	removeBtn *widget.Button

	// Callbacks
	onPlay    func(gameID int64)
	onInstall func(gameID int64)
	onReveal  func(directory string)
	onRemove  func(gameID int64)

	// iconPath resolves a game to its cached icon file
	iconPath func(slug string) string
}

// NewGameRow creates a new game row widget
func NewGameRow(game *model.Game, iconPath func(slug string) string) *GameRow {
	if game == nil {
		log.Printf("Warning: NewGameRow called with nil game")
		game = &model.Game{Name: "Unknown", Slug: "unknown"}
	}

	gr := &GameRow{
		game:     game,
		iconPath: iconPath,
	}
	gr.ExtendBaseWidget(gr)
	gr.createUI()
	gr.updateFromGame()
	return gr
}

// SetCallbacks sets the action callbacks
func (gr *GameRow) SetCallbacks(
	onPlay func(gameID int64),
	onInstall func(gameID int64),
	onReveal func(directory string),
	onRemove func(gameID int64),
) {
	gr.onPlay = onPlay
	gr.onInstall = onInstall
	gr.onReveal = onReveal
	gr.onRemove = onRemove
}

// UpdateGame updates the row with new game data
func (gr *GameRow) UpdateGame(game *model.Game) {
	if game == nil {
		log.Printf("Warning: UpdateGame called with nil game for %q", gr.game.Slug)
		return
	}
	gr.game = game
	gr.updateFromGame()
	gr.Refresh()
}

// createUI creates the UI components
func (gr *GameRow) createUI() {
	gr.icon = canvas.NewImageFromResource(nil)
	gr.icon.FillMode = canvas.ImageFillContain
	gr.icon.SetMinSize(fyne.NewSize(GameIconSize, GameIconSize))

	gr.titleLabel = widget.NewLabel("")
	gr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	gr.titleLabel.Truncation = fyne.TextTruncateEllipsis
	gr.titleLabel.Alignment = fyne.TextAlignLeading

	gr.runnerLabel = widget.NewLabel("")
	gr.runnerLabel.Alignment = fyne.TextAlignTrailing

	gr.statusLabel = widget.NewLabel("")
	gr.statusLabel.Alignment = fyne.TextAlignTrailing

	gr.playBtn = widget.NewButton("", func() {
		current := gr.game
		if current.Installed {
			if gr.onPlay != nil {
				gr.onPlay(current.ID)
			}
			return
		}
		if gr.onInstall != nil {
			gr.onInstall(current.ID)
		}
	})
	gr.playBtn.Importance = widget.HighImportance

	gr.revealBtn = widget.NewButton(IconFolder+" open", func() {
		current := gr.game
		if current.Directory == "" {
			widget.ShowPopUp(widget.NewLabel("Game directory not set."),
				fyne.CurrentApp().Driver().CanvasForObject(gr.revealBtn))
			return
		}
		if gr.onReveal != nil {
			gr.onReveal(current.Directory)
		}
	})
	gr.revealBtn.Importance = widget.MediumImportance

	gr.removeBtn = widget.NewButton("remove", func() {
		if gr.onRemove != nil {
			gr.onRemove(gr.game.ID)
		}
	})
	gr.removeBtn.Importance = widget.MediumImportance
}

// updateFromGame updates UI components based on game state
func (gr *GameRow) updateFromGame() {
	if gr.game == nil {
		log.Printf("Warning: updateFromGame called with nil game")
		return
	}

	gr.titleLabel.SetText(gr.game.DisplayName())

	runnerText := gr.game.Runner
	if runnerText == "" {
		runnerText = DashPlaceholder
	}
	if gr.game.Year > 0 {
		runnerText += MiddleDotSeparator + strconv.Itoa(gr.game.Year)
	}
	gr.runnerLabel.SetText(runnerText)

	if gr.game.Installed {
		gr.statusLabel.Importance = widget.SuccessImportance
		gr.statusLabel.SetText("installed")
		gr.playBtn.SetText(IconPlay + " Play")
	} else {
		gr.statusLabel.Importance = widget.MediumImportance
		gr.statusLabel.SetText("not installed")
		gr.playBtn.SetText("Install")
	}

	if gr.iconPath != nil {
		if res := GameIconResource(gr.iconPath(gr.game.Slug)); res != nil {
			gr.icon.Resource = res
			gr.icon.Refresh()
		}
	}

	gr.updateButtons()
}

// updateButtons updates button states based on game status
func (gr *GameRow) updateButtons() {
	if gr.game.Directory != "" {
		gr.revealBtn.Enable()
	} else {
		gr.revealBtn.Disable()
	}
}

// CreateRenderer creates the widget renderer
func (gr *GameRow) CreateRenderer() fyne.WidgetRenderer {
	return &gameRowRenderer{gameRow: gr}
}

// gameRowRenderer renders the game row widget
type gameRowRenderer struct {
	gameRow *GameRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *gameRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *gameRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		return r.layout.MinSize()
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *gameRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *gameRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *gameRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *gameRowRenderer) createLayout() {
	gr := r.gameRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	leftSide := container.NewBorder(nil, nil, gr.icon, nil, gr.titleLabel)

	rightSide := container.NewHBox(
		fixedWidth(RunnerLabelWidth, gr.runnerLabel),
		fixedWidth(StatusLabelWidth, gr.statusLabel),
	)

	actionRow := container.NewHBox(
		gr.playBtn,
		gr.revealBtn,
		gr.removeBtn,
	)

	rightCluster := container.NewBorder(nil, nil, nil, actionRow, rightSide)
	mainContent := container.NewBorder(nil, nil, nil, rightCluster, leftSide)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)

	r.layout.Resize(fyne.NewSize(RowMinWidth, RowDefaultH))
}
