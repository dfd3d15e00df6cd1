//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"strings"
)

// A Buffer holds the lines of the document being edited.
// It always contains at least one row.
type Buffer struct {
	rows []*Row
}

func NewBuffer() *Buffer {
	return &Buffer{rows: []*Row{NewRow("")}}
}

// NewBufferWithLines creates a buffer holding the given lines.
// An empty list produces a single empty row.
func NewBufferWithLines(lines ...string) *Buffer {
	if len(lines) == 0 {
		return NewBuffer()
	}
	b := &Buffer{rows: make([]*Row, 0, len(lines))}
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	return b
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	return b.rows[i].Length()
}

func (b *Buffer) GetRow(i int) *Row {
	return b.rows[i]
}

// CharacterCount returns the number of characters in all rows.
func (b *Buffer) CharacterCount() int {
	count := 0
	for _, row := range b.rows {
		count += row.Length()
	}
	return count
}

// Lines returns the text of each row.
func (b *Buffer) Lines() []string {
	lines := make([]string, len(b.rows))
	for i, row := range b.rows {
		lines[i] = row.DisplayText()
	}
	return lines
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	b.rows[row].InsertChar(col, c)
}

func (b *Buffer) DeleteCharacter(row, col int) rune {
	return b.rows[row].DeleteChar(col)
}

// insert a row after the specified row
func (b *Buffer) InsertRowAfter(row int, r *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[row+2:], b.rows[row+1:])
	b.rows[row+1] = r
}

// SplitRow breaks a row at col; the text after col becomes a new row below it.
func (b *Buffer) SplitRow(row, col int) {
	b.InsertRowAfter(row, b.rows[row].Split(col))
}

// JoinRow appends a row to the row above it and removes it.
// The first row has nothing to join to.
func (b *Buffer) JoinRow(row int) {
	if row == 0 {
		return
	}
	b.rows[row-1].Join(b.rows[row])
	b.DeleteRow(row)
}

func (b *Buffer) DeleteRow(row int) {
	if len(b.rows) == 1 {
		b.rows[0] = NewRow("")
		return
	}
	b.rows = append(b.rows[0:row], b.rows[row+1:]...)
}
