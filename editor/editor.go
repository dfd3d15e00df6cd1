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
	gott "github.com/timburks/tiny/types"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Cursor      gott.Point   // cursor position; Col may equal the row length
	Buffer      *Buffer      // the document
	previousCol int          // last horizontal cursor position, restored by vertical moves
	highlighter *Highlighter // colors for the most recent frame
}

func NewEditor() *Editor {
	return NewEditorWithBuffer(NewBuffer())
}

func NewEditorWithBuffer(b *Buffer) *Editor {
	return &Editor{Buffer: b, highlighter: NewHighlighter()}
}

func (e *Editor) GetCursor() gott.Point {
	return e.Cursor
}

// SetCursor moves the cursor and remembers its column.
// The position must be valid for the buffer.
func (e *Editor) SetCursor(cursor gott.Point) {
	e.Cursor = cursor
	e.previousCol = cursor.Col
}

func (e *Editor) GetRememberedColumn() int {
	return e.previousCol
}

func (e *Editor) setCol(col int) {
	e.Cursor.Col = col
	e.previousCol = col
}

func (e *Editor) rowLength() int {
	return e.Buffer.GetRowLength(e.Cursor.Row)
}

func (e *Editor) InsertChar(c rune) {
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.setCol(e.Cursor.Col + 1)
}

// InsertNewline splits the current row at the cursor and moves to the start of the new row.
func (e *Editor) InsertNewline() {
	e.Buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
	e.Cursor.Row++
	e.setCol(0)
}

// BackspaceChar deletes the character before the cursor. At the start of a row,
// the row is joined to the end of the row above.
func (e *Editor) BackspaceChar() rune {
	if e.Cursor.Col > 0 {
		c := e.Buffer.DeleteCharacter(e.Cursor.Row, e.Cursor.Col-1)
		e.setCol(e.Cursor.Col - 1)
		return c
	}
	if e.Cursor.Row > 0 {
		col := e.Buffer.GetRowLength(e.Cursor.Row - 1)
		e.Buffer.JoinRow(e.Cursor.Row)
		e.Cursor.Row--
		e.setCol(col)
		return '\n'
	}
	return rune(0)
}

func (e *Editor) MoveCursor(direction int) {
	switch direction {
	case gott.MoveLeft:
		if e.Cursor.Col > 0 {
			e.setCol(e.Cursor.Col - 1)
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.setCol(e.rowLength())
		}
	case gott.MoveRight:
		if e.Cursor.Col < e.rowLength() {
			e.setCol(e.Cursor.Col + 1)
		} else if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
			e.setCol(0)
		}
	case gott.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.KeepCursorInRow()
		}
	case gott.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
			e.KeepCursorInRow()
		}
	}
}

// KeepCursorInRow restores the remembered column, clamped to the current row.
// The remembered column itself is not changed.
func (e *Editor) KeepCursorInRow() {
	e.Cursor.Col = min(e.previousCol, e.rowLength())
}

// Highlight recomputes the color of every character in the buffer.
func (e *Editor) Highlight() []gott.Color {
	return e.highlighter.Highlight(e.Buffer)
}

// Colors returns the colors computed by the last call to Highlight.
func (e *Editor) Colors() []gott.Color {
	return e.highlighter.Colors()
}
