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
package screen

import (
	"errors"
	"log"

	"github.com/nsf/termbox-go"
	gott "github.com/timburks/tiny/types"
)

var _ gott.Screen = (*Termbox)(nil)

// A Termbox screen draws with termbox-go.
type Termbox struct{}

// NewTermbox puts the terminal into raw mode.
func NewTermbox() (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)
	return &Termbox{}, nil
}

func (s *Termbox) Close() {
	termbox.Close()
}

func (s *Termbox) Clear() error {
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (s *Termbox) Size() (gott.Size, error) {
	cols, rows := termbox.Size()
	if cols <= 0 || rows <= 0 {
		return gott.Size{}, errors.New("terminal has no size")
	}
	return gott.Size{Rows: rows, Cols: cols}, nil
}

func (s *Termbox) SetCell(col, row int, c rune, color gott.Color) {
	termbox.SetCell(col, row, c, termboxColor(color), termbox.ColorDefault)
}

func (s *Termbox) SetCursor(col, row int) {
	termbox.SetCursor(col, row)
}

func (s *Termbox) Flush() error {
	return termbox.Flush()
}

// GetNextEvent blocks until an event arrives. It returns nil when the read failed.
func (s *Termbox) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventError {
		log.Printf("read event: %v", event.Err)
		return nil
	}
	return convertTermboxEvent(event)
}

func convertTermboxEvent(event termbox.Event) *gott.Event {
	if event.Type != termbox.EventKey {
		return &gott.Event{Type: gott.EventOther}
	}
	if event.Ch != 0 {
		return &gott.Event{Type: gott.EventKey, Ch: event.Ch}
	}
	if event.Key == termbox.KeySpace {
		return &gott.Event{Type: gott.EventKey, Ch: ' '}
	}
	return &gott.Event{Type: gott.EventKey, Key: termboxKey(event.Key)}
}

func termboxKey(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	default:
		return gott.KeyUnsupported
	}
}

func termboxColor(color gott.Color) termbox.Attribute {
	switch color {
	case gott.ColorBracket:
		return termbox.ColorBlue
	case gott.ColorOperator:
		return termbox.ColorGreen
	case gott.ColorNumber:
		return termbox.ColorMagenta
	case gott.ColorString:
		return termbox.ColorYellow
	default:
		return termbox.ColorDefault
	}
}
