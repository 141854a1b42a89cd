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

package csvtable

import "strings"

// ParseLine splits one CSV line into its fields.
//
// A line without a double quote is split on every comma. A line containing
// at least one quote runs through a two-state automaton: inside quotes a
// comma is literal content and a doubled quote ("") is one literal quote
// character. The closing quote is never part of the field. An unterminated
// quote is not an error; the remainder of the line is consumed as quoted
// content.
//
// Every field is trimmed of leading and trailing whitespace, including
// content that was inside quotes, so edge whitespace cannot be preserved by
// quoting it. An empty line yields no fields. ParseLine never fails; any
// malformed input still produces a best-effort field sequence.
func ParseLine(line string) []string {
	if line == "" {
		return nil
	}

	if !strings.ContainsRune(line, '"') {
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		return fields
	}

	var (
		fields []string
		field  strings.Builder
		quoted bool
	)
	// Delimiter and quote are ASCII, so byte-wise iteration is safe for
	// UTF-8 content.
	for i := 0; i < len(line); i++ {
		c := line[i]
		if quoted {
			if c == '"' {
				if i+1 < len(line) && line[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					quoted = false
				}
			} else {
				field.WriteByte(c)
			}
			continue
		}
		switch c {
		case ',':
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		case '"':
			quoted = true
		default:
			field.WriteByte(c)
		}
	}
	return append(fields, strings.TrimSpace(field.String()))
}
