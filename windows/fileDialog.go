package windows

import (
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// FileDialog is a directory-browsing picker filtered to CSV files.
type FileDialog struct {
	dialog      dialog.Dialog
	window      fyne.Window
	callback    func(string)
	fileList    *widget.List
	files       []string
	homeDir     string
	currentPath string
	pathLabel   *widget.Label
	chosen      bool
}

// NewFileDialog creates a picker rooted at startDir, falling back to the
// user's home directory. The callback receives the selected file path, or
// an empty string when the dialog is dismissed.
func NewFileDialog(w fyne.Window, startDir string, callback func(string)) *FileDialog {
	fd := &FileDialog{
		window:   w,
		callback: callback,
		files:    make([]string, 0),
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	fd.homeDir = homeDir
	fd.currentPath = homeDir
	if startDir != "" {
		if info, err := os.Stat(startDir); err == nil && info.IsDir() {
			fd.currentPath = startDir
		}
	}

	return fd
}

func isCSVFile(name string) bool {
	return strings.HasSuffix(name, ".csv") || strings.HasSuffix(name, ".txt")
}

// Show displays the picker.
func (fd *FileDialog) Show() {
	fd.pathLabel = widget.NewLabel(fd.currentPath)
	fd.pathLabel.Wrapping = fyne.TextTruncate
	fd.pathLabel.TextStyle = fyne.TextStyle{Bold: true}

	fd.fileList = widget.NewList(
		func() int {
			return len(fd.files)
		},
		func() fyne.CanvasObject {
			icon := widget.NewIcon(theme.DocumentIcon())
			label := widget.NewLabel("template")
			return container.NewHBox(icon, label)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			cont := obj.(*fyne.Container)
			icon := cont.Objects[0].(*widget.Icon)
			label := cont.Objects[1].(*widget.Label)

			fileName := fd.files[id]
			label.SetText(fileName)

			fullPath := filepath.Join(fd.currentPath, fileName)
			fileInfo, err := os.Stat(fullPath)
			if err == nil && fileInfo.IsDir() {
				icon.SetResource(theme.FolderIcon())
			} else {
				icon.SetResource(theme.DocumentIcon())
			}
		},
	)

	fd.fileList.OnSelected = func(id widget.ListItemID) {
		fileName := fd.files[id]
		fullPath := filepath.Join(fd.currentPath, fileName)

		fileInfo, err := os.Stat(fullPath)
		if err != nil {
			return
		}

		if fileInfo.IsDir() {
			fd.currentPath = fullPath
			fd.loadDirectory()
			fd.fileList.UnselectAll()
		} else {
			fd.chosen = true
			fd.callback(fullPath)
			fd.dialog.Hide()
		}
	}

	homeButton := widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		fd.currentPath = fd.homeDir
		fd.loadDirectory()
	})

	upButton := widget.NewButtonWithIcon("Up", theme.NavigateBackIcon(), func() {
		parent := filepath.Dir(fd.currentPath)
		if parent != fd.currentPath {
			fd.currentPath = parent
			fd.loadDirectory()
		}
	})

	refreshButton := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		fd.loadDirectory()
	})

	filterInfo := widget.NewLabel("Showing: .csv and .txt files, and directories")
	filterInfo.TextStyle = fyne.TextStyle{Italic: true}

	navToolbar := container.NewBorder(
		nil, nil,
		container.NewHBox(homeButton, upButton, refreshButton),
		nil,
		fd.pathLabel,
	)

	instructions := widget.NewRichTextFromMarkdown("**Select a CSV file (.csv or .txt)**\n\nTap a folder to navigate, or tap a file to open it.")
	instructions.Wrapping = fyne.TextWrapWord

	content := container.NewBorder(
		container.NewVBox(
			instructions,
			widget.NewSeparator(),
			navToolbar,
			widget.NewSeparator(),
			filterInfo,
		),
		nil, nil, nil,
		fd.fileList,
	)

	fd.dialog = dialog.NewCustom("Open CSV File", "Cancel", content, fd.window)
	fd.dialog.SetOnClosed(func() {
		if !fd.chosen {
			fd.callback("")
		}
	})
	fd.dialog.Resize(fyne.NewSize(800, 600))

	fd.loadDirectory()
	fd.dialog.Show()
}

func (fd *FileDialog) loadDirectory() {
	entries, err := os.ReadDir(fd.currentPath)
	if err != nil {
		dialog.ShowError(err, fd.window)
		return
	}

	fd.files = make([]string, 0)

	// Directories first, then matching files.
	for _, entry := range entries {
		if entry.IsDir() && !strings.HasPrefix(entry.Name(), ".") {
			fd.files = append(fd.files, entry.Name())
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() && isCSVFile(entry.Name()) {
			fd.files = append(fd.files, entry.Name())
		}
	}

	fd.pathLabel.SetText(fd.currentPath)
	fd.fileList.Refresh()
}
