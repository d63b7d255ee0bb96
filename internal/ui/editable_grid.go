package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// GridRow is one key/value pair in an editable grid
type GridRow [2]string

// GridModel holds the rows behind an EditableGrid. It is plain data so the
// editing rules can be exercised without a toolkit.
type GridModel struct {
	rows []GridRow

	// OnChanged fires after every mutation
	OnChanged func()
}

// NewGridModel creates a model seeded with the given rows
func NewGridModel(rows []GridRow) *GridModel {
	m := &GridModel{}
	m.rows = append(m.rows, rows...)
	return m
}

// Rows returns a copy of the current data
func (m *GridModel) Rows() []GridRow {
	out := make([]GridRow, len(m.rows))
	copy(out, m.rows)
	return out
}

// Len returns the number of rows
func (m *GridModel) Len() int {
	return len(m.rows)
}

// AddRow appends an empty row and returns its index
func (m *GridModel) AddRow() int {
	m.rows = append(m.rows, GridRow{})
	m.notify()
	return len(m.rows) - 1
}

// DeleteRow removes the row at index; out-of-range indexes are ignored
func (m *GridModel) DeleteRow(index int) {
	if index < 0 || index >= len(m.rows) {
		return
	}
	m.rows = append(m.rows[:index], m.rows[index+1:]...)
	m.notify()
}

// SetCell updates one cell, trimming surrounding whitespace
func (m *GridModel) SetCell(row, col int, text string) {
	if row < 0 || row >= len(m.rows) || col < 0 || col > 1 {
		return
	}
	m.rows[row][col] = strings.TrimSpace(text)
	m.notify()
}

func (m *GridModel) notify() {
	if m.OnChanged != nil {
		m.OnChanged()
	}
}

// EditableGrid is a two-column editable table with add/delete row buttons,
// used for free-form key/value configuration like environment variables
type EditableGrid struct {
	widget.BaseWidget

	model    *GridModel
	columns  [2]string
	list     *widget.List
	selected int
}

// NewEditableGrid creates a grid over the model with the given column
// titles
func NewEditableGrid(model *GridModel, keyTitle, valueTitle string) *EditableGrid {
	g := &EditableGrid{
		model:    model,
		columns:  [2]string{keyTitle, valueTitle},
		selected: -1,
	}
	g.ExtendBaseWidget(g)

	g.list = widget.NewList(
		func() int { return g.model.Len() },
		func() fyne.CanvasObject {
			key := widget.NewEntry()
			value := widget.NewEntry()
			return container.NewGridWithColumns(2, key, value)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			row := g.model.Rows()[id]
			cells := obj.(*fyne.Container).Objects
			key := cells[0].(*widget.Entry)
			value := cells[1].(*widget.Entry)

			key.OnChanged = nil
			value.OnChanged = nil
			key.SetText(row[0])
			value.SetText(row[1])
			key.OnChanged = func(text string) { g.model.SetCell(id, 0, text) }
			value.OnChanged = func(text string) { g.model.SetCell(id, 1, text) }
		},
	)
	g.list.OnSelected = func(id widget.ListItemID) { g.selected = id }
	g.list.OnUnselected = func(widget.ListItemID) { g.selected = -1 }

	return g
}

// Model returns the underlying data model
func (g *EditableGrid) Model() *GridModel {
	return g.model
}

// CreateRenderer builds the grid layout: header, scrolling rows, buttons
func (g *EditableGrid) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewGridWithColumns(2,
		widget.NewLabelWithStyle(g.columns[0], fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle(g.columns[1], fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)

	addBtn := widget.NewButton("Add", func() {
		index := g.model.AddRow()
		g.list.Refresh()
		g.list.Select(index)
		g.list.ScrollTo(index)
	})
	deleteBtn := widget.NewButton("Delete", func() {
		if g.selected < 0 {
			return
		}
		g.model.DeleteRow(g.selected)
		g.selected = -1
		g.list.UnselectAll()
		g.list.Refresh()
	})

	content := container.NewBorder(
		header,
		container.NewHBox(addBtn, deleteBtn),
		nil, nil,
		g.list,
	)
	return widget.NewSimpleRenderer(content)
}
