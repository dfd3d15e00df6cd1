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

	"github.com/gdamore/tcell/v2"
	gott "github.com/timburks/tiny/types"
)

var _ gott.Screen = (*Tcell)(nil)

// A Tcell screen draws with tcell.
type Tcell struct {
	screen tcell.Screen
}

// NewTcell puts the terminal into raw mode.
func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return &Tcell{screen: screen}, nil
}

func (s *Tcell) Close() {
	s.screen.Fini()
}

func (s *Tcell) Clear() error {
	s.screen.Clear()
	return nil
}

func (s *Tcell) Size() (gott.Size, error) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return gott.Size{}, errors.New("terminal has no size")
	}
	return gott.Size{Rows: rows, Cols: cols}, nil
}

func (s *Tcell) SetCell(col, row int, c rune, color gott.Color) {
	s.screen.SetContent(col, row, c, nil, tcellStyle(color))
}

func (s *Tcell) SetCursor(col, row int) {
	s.screen.ShowCursor(col, row)
}

func (s *Tcell) Flush() error {
	s.screen.Show()
	return nil
}

// GetNextEvent blocks until an event arrives. It returns nil once the screen is finalized.
func (s *Tcell) GetNextEvent() *gott.Event {
	event := s.screen.PollEvent()
	if event == nil {
		return nil
	}
	return convertTcellEvent(event)
}

func convertTcellEvent(event tcell.Event) *gott.Event {
	ev, ok := event.(*tcell.EventKey)
	if !ok {
		return &gott.Event{Type: gott.EventOther}
	}
	if ev.Key() == tcell.KeyRune {
		return &gott.Event{Type: gott.EventKey, Ch: ev.Rune()}
	}
	return &gott.Event{Type: gott.EventKey, Key: tcellKey(ev.Key())}
}

func tcellKey(k tcell.Key) gott.Key {
	switch k {
	case tcell.KeyDown:
		return gott.KeyArrowDown
	case tcell.KeyLeft:
		return gott.KeyArrowLeft
	case tcell.KeyRight:
		return gott.KeyArrowRight
	case tcell.KeyUp:
		return gott.KeyArrowUp
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return gott.KeyBackspace
	case tcell.KeyEnter:
		return gott.KeyEnter
	case tcell.KeyEscape:
		return gott.KeyEsc
	default:
		return gott.KeyUnsupported
	}
}

func tcellStyle(color gott.Color) tcell.Style {
	style := tcell.StyleDefault
	switch color {
	case gott.ColorBracket:
		return style.Foreground(tcell.ColorBlue)
	case gott.ColorOperator:
		return style.Foreground(tcell.ColorGreen)
	case gott.ColorNumber:
		return style.Foreground(tcell.ColorDarkMagenta)
	case gott.ColorString:
		return style.Foreground(tcell.ColorYellow)
	default:
		return style
	}
}
