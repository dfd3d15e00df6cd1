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
package commander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/tiny/editor"
	gott "github.com/timburks/tiny/types"
)

func key(k gott.Key) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Key: k}
}

func char(c rune) *gott.Event {
	return &gott.Event{Type: gott.EventKey, Ch: c}
}

func setup() (*Commander, *editor.Editor) {
	e := editor.NewEditor()
	return NewCommander(e), e
}

func process(t *testing.T, c *Commander, events ...*gott.Event) {
	t.Helper()
	for _, event := range events {
		require.Equal(t, gott.Continue, c.ProcessEvent(event))
	}
}

func TestTypingScenario(t *testing.T) {
	c, e := setup()
	process(t, c,
		char('x'), char('y'), char('z'),
		key(gott.KeyArrowLeft), key(gott.KeyArrowLeft),
		key(gott.KeyBackspace))
	assert.Equal(t, []string{"yz"}, e.Buffer.Lines())
	assert.Equal(t, gott.Point{Row: 0, Col: 0}, e.GetCursor())
	assert.True(t, c.IsRunning())
}

func TestQuit(t *testing.T) {
	c, e := setup()
	process(t, c, char('a'))
	assert.Equal(t, gott.Quit, c.ProcessEvent(key(gott.KeyEsc)))
	assert.False(t, c.IsRunning())
	assert.Equal(t, []string{"a"}, e.Buffer.Lines())
	assert.Equal(t, gott.Point{Row: 0, Col: 1}, e.GetCursor())
}

func TestIgnoredEvents(t *testing.T) {
	c, e := setup()
	process(t, c,
		nil,
		&gott.Event{Type: gott.EventNone},
		&gott.Event{Type: gott.EventOther, Ch: 'q'},
		key(gott.KeyUnsupported),
		char('\n'),
		key(gott.KeyNone))
	assert.Equal(t, []string{""}, e.Buffer.Lines())
	assert.Equal(t, gott.Point{}, e.GetCursor())
}

func TestEnterAndNavigate(t *testing.T) {
	c, e := setup()
	for _, ch := range "abcdef" {
		process(t, c, char(ch))
	}
	process(t, c, key(gott.KeyEnter), char('x'), char('y'), key(gott.KeyEnter))
	for _, ch := range "abcdef" {
		process(t, c, char(ch))
	}
	require.Equal(t, []string{"abcdef", "xy", "abcdef"}, e.Buffer.Lines())

	process(t, c, key(gott.KeyArrowUp), key(gott.KeyArrowUp))
	assert.Equal(t, gott.Point{Row: 0, Col: 6}, e.GetCursor())
	process(t, c, key(gott.KeyArrowLeft), key(gott.KeyArrowDown))
	assert.Equal(t, gott.Point{Row: 1, Col: 2}, e.GetCursor())
	process(t, c, key(gott.KeyArrowDown))
	assert.Equal(t, gott.Point{Row: 2, Col: 5}, e.GetCursor())
	process(t, c, key(gott.KeyArrowRight), key(gott.KeyArrowRight))
	assert.Equal(t, gott.Point{Row: 2, Col: 6}, e.GetCursor())
}

func TestSplitThenBackspaceRestoresLine(t *testing.T) {
	c, e := setup()
	for _, ch := range "hello" {
		process(t, c, char(ch))
	}
	process(t, c, key(gott.KeyArrowLeft), key(gott.KeyArrowLeft), key(gott.KeyEnter))
	require.Equal(t, []string{"hel", "lo"}, e.Buffer.Lines())
	process(t, c, key(gott.KeyBackspace))
	assert.Equal(t, []string{"hello"}, e.Buffer.Lines())
	assert.Equal(t, gott.Point{Row: 0, Col: 3}, e.GetCursor())
}

func TestEventsKeepCursorValid(t *testing.T) {
	c, e := setup()
	events := []*gott.Event{
		char('a'), key(gott.KeyEnter), key(gott.KeyArrowUp), char('"'),
		key(gott.KeyArrowRight), key(gott.KeyArrowRight), key(gott.KeyArrowRight),
		key(gott.KeyBackspace), key(gott.KeyArrowDown), key(gott.KeyEnter),
		key(gott.KeyArrowLeft), key(gott.KeyBackspace), char('7'),
	}
	for i := 0; i < 20; i++ {
		for _, event := range events {
			c.ProcessEvent(event)
			cursor := e.GetCursor()
			require.GreaterOrEqual(t, e.Buffer.GetRowCount(), 1)
			require.Less(t, cursor.Row, e.Buffer.GetRowCount())
			require.GreaterOrEqual(t, cursor.Row, 0)
			require.LessOrEqual(t, cursor.Col, e.Buffer.GetRowLength(cursor.Row))
			require.GreaterOrEqual(t, cursor.Col, 0)
			require.Len(t, e.Highlight(), e.Buffer.CharacterCount())
		}
	}
}
