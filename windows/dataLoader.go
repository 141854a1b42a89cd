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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"csvb/csvtable"

	"fyne.io/fyne/v2/dialog"
)

// readLines reads the whole file into memory as an ordered slice of text
// lines. Line splitting follows the host platform convention; a trailing
// carriage return is not part of the line.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return lines, nil
}

// LoadCSVFile loads the file at path into a grid tab. The whole pipeline
// runs synchronously on the calling goroutine; only one load is ever in
// flight.
//
// A missing file and an empty file are reported directly to the user and
// never reach the table builder. A read failure is logged with the
// triggering path and surfaced as a generic load error.
func (t *MainWindow) LoadCSVFile(path string) {
	name := filepath.Base(path)

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.log.Warn("file not found", "path", path)
		t.SetStatus("File not found: " + name)
		dialog.ShowError(fmt.Errorf("file not found: %s", path), t.w)
		return
	}

	t.SetStatus("Loading file: " + name)
	lines, err := readLines(path)
	if err != nil {
		t.log.Error("failed to read file", "path", path, "error", err)
		t.SetStatus("Error loading file: " + name)
		dialog.ShowError(fmt.Errorf("could not load %s", name), t.w)
		return
	}

	table, err := csvtable.Build(lines)
	if errors.Is(err, csvtable.ErrEmptyFile) {
		t.log.Warn("file is empty", "path", path)
		t.SetStatus("File is empty: " + name)
		t.clearTable(name)
		return
	}

	t.displayTable(table, name)
	t.log.Info("file loaded", "file", name,
		"rows", table.RowCount(), "columns", table.ColumnCount())
	t.SetStatus(loadedStatus(name, table))

	t.cfg.Files.LastDir = filepath.Dir(path)
}

// loadedStatus is the one-line load report shown in the status bar and
// mirrored to the log.
func loadedStatus(name string, table *csvtable.Table) string {
	return fmt.Sprintf("Loaded %s (%d rows, %d columns)",
		name, table.RowCount(), table.ColumnCount())
}
