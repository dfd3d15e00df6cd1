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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"
	gott "github.com/timburks/tiny/types"
)

// the commander that script primitives operate on
var scripted *Commander

var namedKeys = map[string]gott.Key{
	"escape":    gott.KeyEsc,
	"enter":     gott.KeyEnter,
	"backspace": gott.KeyBackspace,
	"left":      gott.KeyArrowLeft,
	"right":     gott.KeyArrowRight,
	"up":        gott.KeyArrowUp,
	"down":      gott.KeyArrowDown,
}

func init() {
	golisp.MakePrimitiveFunction("type-text", "1", TypeImpl)
	golisp.MakePrimitiveFunction("press-key", "1", PressImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", TextImpl)
	golisp.MakePrimitiveFunction("cursor-line", "0", CursorLineImpl)
	golisp.MakePrimitiveFunction("cursor-char", "0", CursorCharImpl)
	golisp.MakePrimitiveFunction("line-count", "0", LineCountImpl)
	golisp.MakePrimitiveFunction("char-count", "0", CharCountImpl)
}

func currentCommander() (*Commander, error) {
	if scripted == nil {
		return nil, errors.New("no editor is available to scripts")
	}
	return scripted, nil
}

// feed an event unless the script has already quit
func feed(c *Commander, event *gott.Event) {
	if c.IsRunning() {
		c.ProcessEvent(event)
	}
}

func TypeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := currentCommander()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("type-text requires a string argument")
	}
	for _, ch := range golisp.StringValue(val) {
		feed(c, &gott.Event{Type: gott.EventKey, Ch: ch})
	}
	return val, nil
}

func PressImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := currentCommander()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("press-key requires a string argument")
	}
	key, ok := namedKeys[golisp.StringValue(val)]
	if !ok {
		return nil, fmt.Errorf("press-key: unknown key %q", golisp.StringValue(val))
	}
	feed(c, &gott.Event{Type: gott.EventKey, Key: key})
	return val, nil
}

func TextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := currentCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.editor.Buffer.String()), nil
}

func CursorLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := currentCommander()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row)), nil
}

func CursorCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := currentCommander()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Col)), nil
}

func LineCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := currentCommander()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.Buffer.GetRowCount())), nil
}

func CharCountImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	c, err := currentCommander()
	if err != nil {
		return nil, err
	}
	return golisp.IntegerWithValue(int64(c.editor.Buffer.CharacterCount())), nil
}

// ParseEval evaluates a script against the commander's editor and returns
// the value of its last expression. Scripts may contain several expressions.
func (c *Commander) ParseEval(script string) (*golisp.Data, error) {
	scripted = c
	defer func() { scripted = nil }()
	value, err := golisp.ParseAndEval("(begin " + script + "\n)")
	if err != nil {
		log.Printf("ERR %+v", err)
		return nil, err
	}
	log.Printf("SEXPR %+v", value)
	return value, nil
}

// ParseEvalFile evaluates the script in a file.
func (c *Commander) ParseEvalFile(path string) (*golisp.Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.ParseEval(string(b))
}
