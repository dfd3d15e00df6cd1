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
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"

	gott "github.com/timburks/tiny/types"
)

func TestConvertTermboxEvent(t *testing.T) {
	cases := []struct {
		event termbox.Event
		want  gott.Event
	}{
		{termbox.Event{Type: termbox.EventKey, Ch: 'a'}, gott.Event{Type: gott.EventKey, Ch: 'a'}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeySpace}, gott.Event{Type: gott.EventKey, Ch: ' '}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEsc}, gott.Event{Type: gott.EventKey, Key: gott.KeyEsc}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyEnter}, gott.Event{Type: gott.EventKey, Key: gott.KeyEnter}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace}, gott.Event{Type: gott.EventKey, Key: gott.KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyBackspace2}, gott.Event{Type: gott.EventKey, Key: gott.KeyBackspace}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowLeft}, gott.Event{Type: gott.EventKey, Key: gott.KeyArrowLeft}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowRight}, gott.Event{Type: gott.EventKey, Key: gott.KeyArrowRight}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowUp}, gott.Event{Type: gott.EventKey, Key: gott.KeyArrowUp}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyArrowDown}, gott.Event{Type: gott.EventKey, Key: gott.KeyArrowDown}},
		{termbox.Event{Type: termbox.EventKey, Key: termbox.KeyTab}, gott.Event{Type: gott.EventKey, Key: gott.KeyUnsupported}},
		{termbox.Event{Type: termbox.EventResize, Width: 80, Height: 24}, gott.Event{Type: gott.EventOther}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, *convertTermboxEvent(tc.event), "%+v", tc.event)
	}
}

func TestConvertTcellEvent(t *testing.T) {
	cases := []struct {
		event tcell.Event
		want  gott.Event
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), gott.Event{Type: gott.EventKey, Ch: 'a'}},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), gott.Event{Type: gott.EventKey, Ch: ' '}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyEsc}},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyEnter}},
		{tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyBackspace}},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyArrowLeft}},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyArrowRight}},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyArrowUp}},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyArrowDown}},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), gott.Event{Type: gott.EventKey, Key: gott.KeyUnsupported}},
		{tcell.NewEventResize(80, 24), gott.Event{Type: gott.EventOther}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, *convertTcellEvent(tc.event))
	}
}

func TestColors(t *testing.T) {
	assert.Equal(t, termbox.ColorDefault, termboxColor(gott.ColorDefault))
	assert.Equal(t, termbox.ColorBlue, termboxColor(gott.ColorBracket))
	assert.Equal(t, termbox.ColorGreen, termboxColor(gott.ColorOperator))
	assert.Equal(t, termbox.ColorMagenta, termboxColor(gott.ColorNumber))
	assert.Equal(t, termbox.ColorYellow, termboxColor(gott.ColorString))

	assert.Equal(t, tcell.StyleDefault, tcellStyle(gott.ColorDefault))
	fg, _, _ := tcellStyle(gott.ColorString).Decompose()
	assert.Equal(t, tcell.ColorYellow, fg)
}
