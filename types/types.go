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
package types

// Event types
const (
	EventNone  = 0 // no event was produced (read failed or event ignored)
	EventKey   = 1
	EventOther = 2
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Keys that the editor distinguishes. Character keys use KeyNone with Ch set.
type Key int

const (
	KeyNone Key = iota
	KeyEsc
	KeyEnter
	KeyBackspace
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyUnsupported
)

// An Event is a single input event read from the terminal.
type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// Result reports whether the session should keep running.
type Result int

const (
	Continue Result = iota
	Quit
)

// Color is a display color tag assigned to each character by the highlighter.
type Color int

const (
	ColorDefault Color = iota
	ColorBracket
	ColorOperator
	ColorNumber
	ColorString
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Display is a terminal output surface.
type Display interface {
	Clear() error
	Size() (Size, error)
	SetCell(col, row int, c rune, color Color)
	SetCursor(col, row int)
	Flush() error
}

// An EventSource supplies input events; GetNextEvent blocks until one arrives.
type EventSource interface {
	GetNextEvent() *Event
}

// A Screen is both a Display and an EventSource.
type Screen interface {
	Display
	EventSource
	Close()
}
