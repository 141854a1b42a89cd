// Copyright 2025 The csvb Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package windows

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// CellViewer shows the full value of a single grid cell in a secondary
// view, labelled with 1-based coordinates.
type CellViewer struct {
	dialog dialog.Dialog
	window fyne.Window
	title  string
	value  string
}

// NewCellViewer creates a viewer for the value at the zero-based grid
// coordinate (row, col).
func NewCellViewer(w fyne.Window, row, col int, value string) *CellViewer {
	return &CellViewer{
		window: w,
		title:  cellTitle(row, col),
		value:  value,
	}
}

// cellTitle formats a zero-based grid coordinate as a 1-based label.
func cellTitle(row, col int) string {
	return fmt.Sprintf("Row %d, Column %d", row+1, col+1)
}

// Show displays the viewer.
func (cv *CellViewer) Show() {
	entry := widget.NewMultiLineEntry()
	entry.SetText(cv.value)
	entry.Wrapping = fyne.TextWrapWord
	entry.OnChanged = func(string) {
		// The viewer is read-only; undo any edit.
		entry.SetText(cv.value)
	}

	copyButton := widget.NewButtonWithIcon("Copy", theme.ContentCopyIcon(), func() {
		cv.window.Clipboard().SetContent(cv.value)
	})

	length := widget.NewLabel(fmt.Sprintf("%d characters", len([]rune(cv.value))))
	length.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewBorder(
		nil,
		container.NewHBox(length, copyButton),
		nil, nil,
		entry,
	)

	cv.dialog = dialog.NewCustom(cv.title, "Close", content, cv.window)
	cv.dialog.Resize(fyne.NewSize(500, 300))
	cv.dialog.Show()
}
