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
	"github.com/timburks/tiny/editor"
	gott "github.com/timburks/tiny/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor  *editor.Editor
	running bool
}

func NewCommander(e *editor.Editor) *Commander {
	return &Commander{editor: e, running: true}
}

func (c *Commander) IsRunning() bool {
	return c.running
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

// ProcessEvent applies one event to the editor. A nil event means that
// nothing was read and leaves the editor unchanged.
func (c *Commander) ProcessEvent(event *gott.Event) gott.Result {
	if event == nil || event.Type != gott.EventKey {
		return gott.Continue
	}
	result := c.ProcessKey(event)
	if result == gott.Quit {
		c.running = false
	}
	return result
}

func (c *Commander) ProcessKey(event *gott.Event) gott.Result {
	e := c.editor
	switch event.Key {
	case gott.KeyEsc:
		return gott.Quit
	case gott.KeyEnter:
		e.InsertNewline()
	case gott.KeyBackspace:
		e.BackspaceChar()
	case gott.KeyArrowLeft:
		e.MoveCursor(gott.MoveLeft)
	case gott.KeyArrowRight:
		e.MoveCursor(gott.MoveRight)
	case gott.KeyArrowUp:
		e.MoveCursor(gott.MoveUp)
	case gott.KeyArrowDown:
		e.MoveCursor(gott.MoveDown)
	case gott.KeyNone:
		if event.Ch != 0 && event.Ch != '\n' {
			e.InsertChar(event.Ch)
		}
	}
	return gott.Continue
}
