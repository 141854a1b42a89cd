package windows

import (
	"fmt"
	"log/slog"
	"strconv"

	"csvb/config"
	"csvb/csvtable"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MainWindow is the application shell: a toolbar, a set of document tabs
// holding one grid per loaded file, and a status bar.
type MainWindow struct {
	a         fyne.App
	w         fyne.Window
	cfg       *config.Config
	log       *slog.Logger
	docTabs   *container.DocTabs
	statusBar *widget.Label
}

// CreateMainWindow builds the main window. Call Run to show it and enter
// the event loop.
func CreateMainWindow(cfg *config.Config, log *slog.Logger) *MainWindow {
	var v MainWindow
	v.cfg = cfg
	v.log = log
	v.newMainWindow()
	return &v
}

// SetStatus updates the status bar message.
func (t *MainWindow) SetStatus(message string) {
	if t.statusBar != nil {
		t.statusBar.SetText(message)
	}
}

// OpenFile shows the file picker and loads the chosen file.
func (t *MainWindow) OpenFile() {
	fd := NewFileDialog(t.w, t.cfg.Files.LastDir, func(path string) {
		if path == "" {
			return
		}
		t.LoadCSVFile(path)
	})
	fd.Show()
}

func (t *MainWindow) newMainWindow() {
	t.a = app.NewWithID("csvb")
	t.a.Settings().SetTheme(&CustomTheme{})

	t.statusBar = widget.NewLabel("Ready")
	t.statusBar.TextStyle = fyne.TextStyle{Italic: true}

	t.w = t.a.NewWindow("CSV Browser")
	t.w.Resize(fyne.NewSize(float32(t.cfg.Window.Width), float32(t.cfg.Window.Height)))

	welcome := widget.NewLabel("Open a CSV file to view it as a table.\nTap a cell to inspect its full value.")
	welcome.Alignment = fyne.TextAlignCenter
	t.docTabs = container.NewDocTabs(container.NewTabItem("Welcome", container.NewCenter(welcome)))
	t.docTabs.CloseIntercept = func(ti *container.TabItem) {
		t.docTabs.Remove(ti)
	}

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), func() {
			t.OpenFile()
		}),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.InfoIcon(), func() {
			dialog.ShowInformation("CSV Browser",
				"Loads a comma-separated file into a grid.\nTap any cell to view its value.", t.w)
		}),
		widget.NewToolbarSpacer(),
	)

	bottom := container.NewHBox(t.statusBar)
	c := container.NewBorder(toolbar, bottom, nil, nil, widget.NewCard("", "", t.docTabs))
	t.w.SetContent(c)
}

// Run shows the main window and blocks until the application exits.
func (t *MainWindow) Run() {
	t.w.ShowAndRun()
}

// displayTable renders a table as a grid in a document tab. A tab that
// already shows a file of the same name is replaced, so reloading a file
// discards the previous table.
func (t *MainWindow) displayTable(table *csvtable.Table, tabName string) {
	grid := widget.NewTableWithHeaders(
		func() (int, int) {
			return table.RowCount(), table.ColumnCount()
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, co fyne.CanvasObject) {
			value, err := table.Cell(id.Row, id.Col)
			if err != nil {
				return
			}
			co.(*widget.Label).SetText(value)
		},
	)

	grid.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("header")
		label.TextStyle = fyne.TextStyle{Bold: true}
		return label
	}
	grid.UpdateHeader = func(id widget.TableCellID, co fyne.CanvasObject) {
		label := co.(*widget.Label)
		switch {
		case id.Row < 0 && id.Col < 0:
			label.SetText("")
		case id.Row < 0:
			name, err := table.ColumnName(id.Col)
			if err != nil {
				return
			}
			label.SetText(name)
		default:
			// Row headers carry the 1-based row number.
			label.SetText(strconv.Itoa(id.Row + 1))
		}
	}

	for col := 0; col < table.ColumnCount(); col++ {
		grid.SetColumnWidth(col, 120)
	}

	grid.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Col < 0 {
			return
		}
		t.showCell(table, id.Row, id.Col)
		grid.UnselectAll()
	}

	card := widget.NewCard("", tabName, grid)

	for _, tab := range t.docTabs.Items {
		if tab.Text == tabName {
			tab.Content = card
			t.docTabs.Select(tab)
			t.docTabs.Refresh()
			return
		}
	}

	tabItem := container.NewTabItem(tabName, card)
	t.docTabs.Append(tabItem)
	t.docTabs.Select(tabItem)
}

// clearTable removes the tab showing the named file, if any.
func (t *MainWindow) clearTable(tabName string) {
	for _, tab := range t.docTabs.Items {
		if tab.Text == tabName {
			t.docTabs.Remove(tab)
			return
		}
	}
}

// showCell opens the cell viewer for the tapped grid coordinate.
func (t *MainWindow) showCell(table *csvtable.Table, row, col int) {
	value, err := table.Cell(row, col)
	if err != nil {
		t.log.Warn("cell lookup out of range", "row", row, "col", col)
		return
	}
	cv := NewCellViewer(t.w, row, col, value)
	cv.Show()
	t.SetStatus(fmt.Sprintf("Viewing %s", cellTitle(row, col)))
}
