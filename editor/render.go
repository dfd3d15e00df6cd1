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
	"fmt"

	"github.com/mattn/go-runewidth"
	gott "github.com/timburks/tiny/types"
)

// GutterWidth is the number of columns reserved for line numbers.
const GutterWidth = 2

// Render redraws the entire screen: numbered rows colored by the last
// highlight, a status line, and the cursor.
func (e *Editor) Render(display gott.Display) error {
	if err := display.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	size, err := display.Size()
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}

	count := e.Buffer.CharacterCount()
	e.highlighter.resize(count)
	colors := e.highlighter.Colors()

	c := 0
	for i, r := range e.Buffer.rows {
		for x, ch := range fmt.Sprintf("%d ", i) {
			display.SetCell(x, i, ch, gott.ColorDefault)
		}
		for j, ch := range r.Text {
			display.SetCell(j+GutterWidth, i, ch, colors[c])
			c++
		}
	}

	e.renderStatusLine(display, size, count)

	display.SetCursor(e.Cursor.Col+GutterWidth, e.Cursor.Row)
	if err := display.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// StatusText describes the terminal and document sizes.
func (e *Editor) StatusText(size gott.Size, count int) string {
	return fmt.Sprintf("Terminal Size: %d %d lines: %d Chars: %d",
		size.Cols, size.Rows, e.Buffer.GetRowCount(), count)
}

// the status line is right-aligned on the bottom row
func (e *Editor) renderStatusLine(display gott.Display, size gott.Size, count int) {
	if size.Rows == 0 {
		return
	}
	text := e.StatusText(size, count)
	x := max(size.Cols-runewidth.StringWidth(text), 0)
	for _, ch := range text {
		display.SetCell(x, size.Rows-1, ch, gott.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}
